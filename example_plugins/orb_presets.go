//go:build plugin

package main

import (
	"strings"

	"gt"
)

// PluginName identifies the plugin.
var PluginName = "Orb Presets"

const orbGroup = "clickminimaporbs2d3a8ae"

// Init adds /pvm and /skilling presets for the orb click blocking.
func Init() {
	gt.RegisterCommand("pvm", func(string) { preset(true, true) })
	gt.RegisterCommand("skilling", func(string) { preset(false, false) })
	gt.RegisterCommand("orbstatus", func(string) {
		gt.Console("hitpoints orb blocked: " + yesNo(gt.ConfigBool(orbGroup, "hitpointsOrb")))
		gt.Console("special attack orb blocked: " + yesNo(gt.ConfigBool(orbGroup, "specialAttackOrb")))
		gt.Console("running: " + strings.Join(gt.Plugins(), ", "))
	})
}

func preset(hp, spec bool) {
	gt.SetConfigBool(orbGroup, "hitpointsOrb", hp)
	gt.SetConfigBool(orbGroup, "specialAttackOrb", spec)
	gt.Logf("orb preset hp=%v spec=%v", hp, spec)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
