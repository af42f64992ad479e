package main

import (
	"fmt"
	"strconv"
	"strings"

	"clickorbs/clickorbs"
	"clickorbs/pluginapi"
)

const clientOwner = "client"

// registerClientCommands installs the built-in slash commands. Handlers
// may run on any goroutine, so client state changes go through clThread.
func registerClientCommands() {
	pluginRegisterCommand(clientOwner, "orbs", cmdOrbs)
	pluginRegisterCommand(clientOwner, "poison", func(args string) { cmdStatus(pluginapi.VarpPoison, false, "Poison", args) })
	pluginRegisterCommand(clientOwner, "disease", func(args string) { cmdStatus(pluginapi.VarpDiseaseValue, false, "Disease", args) })
	pluginRegisterCommand(clientOwner, "parasite", func(args string) { cmdStatus(pluginapi.VarbitParasite, true, "Parasite", args) })
	pluginRegisterCommand(clientOwner, "equip", cmdEquip)
	pluginRegisterCommand(clientOwner, "unequip", func(string) {
		clThread.InvokeLater(func() {
			hc.unwield()
			consoleMessage("Weapon removed.")
		})
	})
	pluginRegisterCommand(clientOwner, "layout", cmdLayout)
	pluginRegisterCommand(clientOwner, "login", func(string) { clThread.InvokeLater(login) })
	pluginRegisterCommand(clientOwner, "logout", func(string) { clThread.InvokeLater(logout) })
	pluginRegisterCommand(clientOwner, "plugins", cmdPlugins)
	pluginRegisterCommand(clientOwner, "help", func(string) {
		consoleMessage("Commands: " + strings.Join(commandNames(), " "))
	})
}

// cmdPlugins lists the compiled plugins and every loaded script plugin
// with the commands it registered.
func cmdPlugins(string) {
	consoleMessage("Plugins: " + strings.Join(runningPluginNames(), ", "))
	scripts := scriptPluginSummary()
	if len(scripts) == 0 {
		consoleMessage("No script plugins loaded.")
		return
	}
	for _, line := range scripts {
		consoleMessage("Script " + line)
	}
}

var orbKeys = map[string]string{
	"hp":        clickorbs.KeyHitpointsOrb,
	"hitpoints": clickorbs.KeyHitpointsOrb,
	"spec":      clickorbs.KeySpecialAttackOrb,
	"special":   clickorbs.KeySpecialAttackOrb,
}

// cmdOrbs handles "/orbs", "/orbs hp" (toggle) and "/orbs spec off".
func cmdOrbs(args string) {
	fields := strings.Fields(strings.ToLower(args))
	if len(fields) == 0 {
		for _, it := range configs.Items(clickorbs.ConfigGroup) {
			consoleMessage(fmt.Sprintf("%s: block=%v", it.Name, configs.Bool(clickorbs.ConfigGroup, it.Key)))
		}
		return
	}
	key, ok := orbKeys[fields[0]]
	if !ok {
		consoleMessage("usage: /orbs [hp|spec] [on|off]")
		return
	}
	v := !configs.Bool(clickorbs.ConfigGroup, key)
	if len(fields) > 1 {
		b, err := parseSwitch(fields[1])
		if err != nil {
			consoleMessage("usage: /orbs [hp|spec] [on|off]")
			return
		}
		v = b
	}
	configs.SetBool(clickorbs.ConfigGroup, key, v)
	consoleMessage(fmt.Sprintf("Block %s orb: %v", fields[0], v))
}

func parseSwitch(s string) (bool, error) {
	switch s {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// cmdStatus toggles a status var, or sets it to the given amount.
func cmdStatus(id int, varbit bool, label, args string) {
	amount := -1
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil || n < 0 {
			consoleMessage(fmt.Sprintf("usage: /%s [amount]", strings.ToLower(label)))
			return
		}
		amount = n
	}
	clThread.InvokeLater(func() {
		vars := hc.varps
		if varbit {
			vars = hc.varbits
		}
		switch {
		case amount >= 0:
			vars[id] = amount
		case vars[id] > 0:
			vars[id] = 0
		default:
			vars[id] = 1
		}
		consoleMessage(fmt.Sprintf("%s: %d", label, vars[id]))
	})
}

// cmdEquip wields an item id, or cycles a special attack weapon on and
// off when no id is given.
func cmdEquip(args string) {
	id := -1
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil {
			consoleMessage("usage: /equip [item id]")
			return
		}
		id = n
	}
	clThread.InvokeLater(func() {
		switch {
		case id >= 0:
			hc.wield(id)
		case hc.hasSpecWeapon():
			hc.wield(itemBronzeSword)
		default:
			hc.wield(itemDragonScimitar)
		}
		_, spec := specAttackCosts[hc.weapon()]
		consoleMessage(fmt.Sprintf("Wielding item %d (special attack: %v)", hc.weapon(), spec))
	})
}

func cmdLayout(args string) {
	clThread.InvokeLater(func() {
		switch strings.ToLower(args) {
		case "fixed":
			setLayout(false)
		case "resizable", "resized":
			setLayout(true)
		case "":
			setLayout(!hc.resized)
		default:
			consoleMessage("usage: /layout [fixed|resizable]")
		}
	})
}
