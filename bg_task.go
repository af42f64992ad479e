package main

import (
	"context"
	"time"
)

func runBackgroundTasks(ctx context.Context) {
	go settingsSaveTask(ctx)
	go configSaveTask(ctx)
}

func settingsSaveTask(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// gs belongs to the client thread.
			if settingsDirty.Swap(false) {
				clThread.InvokeLater(saveSettings)
			}
		}
	}
}

func configSaveTask(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if configs != nil && configs.Dirty() {
				saveConfig()
			}
		}
	}
}
