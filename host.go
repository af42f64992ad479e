package main

import (
	"log"
	"path/filepath"

	"clickorbs/clickorbs"
	"clickorbs/clientthread"
	"clickorbs/config"
	"clickorbs/eventbus"
	"clickorbs/pluginapi"
)

var (
	eventBus *eventbus.Bus
	clThread *clientthread.Thread
	configs  *config.Manager
	hc       *hostClient
)

// setupHost builds the client runtime and loads stored plugin config.
// Plugins are not started.
func setupHost() {
	eventBus = eventbus.New()
	clThread = clientthread.New()
	configs = config.NewManager(eventBus)
	hc = newHostClient(eventBus, gs.Resizable)

	if err := configs.Load(filepath.Join(dataDirPath, configFile)); err != nil {
		log.Printf("load config: %v", err)
	}
	registerClientCommands()
}

// compiledPlugins returns the plugins built into the client.
func compiledPlugins() []pluginapi.Plugin {
	return []pluginapi.Plugin{
		clickorbs.New(hc, clThread, eventBus, configs),
	}
}

// login and logout run on the client thread.
func login() {
	hc.setGameState(pluginapi.LoggedIn)
	consoleMessage("Logged in.")
}

func logout() {
	hc.setGameState(pluginapi.LoginScreen)
	consoleMessage("Logged out.")
}

func setLayout(resizable bool) {
	hc.setResized(resizable)
	gs.Resizable = resizable
	settingsDirty.Store(true)
	if resizable {
		consoleMessage("Layout: resizable")
	} else {
		consoleMessage("Layout: fixed")
	}
}
