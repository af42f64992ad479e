// Command clickorbs is a small sandbox client hosting the Click Minimap
// Orbs plugin: a minimap with hitpoints and special attack orbs over a
// clickable world.
package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hako/durafmt"
)

func main() {
	var (
		dataDir      = flag.String("data", dataDirPath, "directory for settings, config and plugins")
		fixed        = flag.Bool("fixed", false, "start in the fixed layout")
		offline      = flag.Bool("offline", false, "start on the login screen")
		fake         = flag.Bool("fake", false, "replay a scripted scenario")
		fakeInterval = flag.Duration("fake-interval", 3*time.Second, "delay between fake scenario steps")
		pluginDir    = flag.String("plugins", "", "script plugin directory, e.g. example_plugins (default <data>/plugins)")
	)
	flag.Parse()
	dataDirPath = *dataDir
	log.Printf("clickorbs v%d: %s", clientVersion, changelog)

	if loadSettings() {
		log.Printf("settings loaded from %s", filepath.Join(dataDirPath, settingsFile))
	} else {
		log.Printf("using default settings")
		gs = gsdef
	}
	if *fixed {
		gs.Resizable = false
	}
	if *offline {
		gs.AutoLogin = false
	}

	setupHost()
	for _, p := range compiledPlugins() {
		if err := startPlugin(p); err != nil {
			log.Printf("[plugin] %v", err)
		}
	}
	dir := *pluginDir
	if dir == "" {
		dir = filepath.Join(dataDirPath, "plugins")
	}
	if n := loadScriptPlugins(dir); n > 0 {
		log.Printf("loaded %d script plugins from %s", n, dir)
	}
	if gs.AutoLogin {
		clThread.InvokeLater(login)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runBackgroundTasks(ctx)
	if *fake {
		runFakeMode(ctx, *fakeInterval)
	}

	ebiten.SetWindowTitle("Click Minimap Orbs")
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	started := time.Now()
	g := &game{}
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("run: %v", err)
	}
	cancel()

	// RunGame has returned, so this goroutine is the only one left that
	// may touch client state.
	stopPlugins()
	clThread.Drain()
	gs.WindowWidth, gs.WindowHeight = ebiten.WindowSize()
	clampWindowSettings()
	saveSettings()
	saveConfig()

	log.Printf("ran for %s, %s frames",
		durafmt.Parse(time.Since(started).Round(time.Second)).LimitFirstN(2),
		humanize.Comma(int64(g.frames)))
}
