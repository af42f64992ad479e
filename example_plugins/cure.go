//go:build plugin

package main

import "gt"

// PluginName identifies the plugin.
var PluginName = "Cure Shortcut"

// Init binds /cure to clear poison, disease and parasites at once.
func Init() {
	gt.RegisterCommand("cure", func(string) {
		gt.RunCommand("/poison 0")
		gt.RunCommand("/disease 0")
		gt.RunCommand("/parasite 0")
		gt.Console("* Cured.")
	})
}
