package main

import (
	"context"
	"time"
)

// fakeScenario walks through the situations the orb plugin reacts to.
var fakeScenario = []string{
	"/login",
	"/equip 4587", // special attack weapon: spec orb shows
	"/orbs spec off",
	"/equip 1277", // plain weapon: spec orb hides again
	"/poison 6",   // hitpoints orb shows while poisoned
	"/orbs hp off",
	"/poison 0",
	"/parasite 1",
	"/parasite 0",
	"/layout fixed", // plugin stands down in the fixed layout
	"/layout resizable",
	"/orbs hp on",
	"/orbs spec on",
}

// runFakeMode replays fakeScenario so the client can be watched without
// touching the keyboard.
func runFakeMode(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		step := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			cmd := fakeScenario[step]
			consoleMessage("[fake] " + cmd)
			runCommand(cmd)
			step = (step + 1) % len(fakeScenario)
		}
	}()
}
