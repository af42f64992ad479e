package main

import "clickorbs/pluginapi"

// Client scripts that refresh the minimap orbs every frame.
const (
	scriptUpdateHitpointsOrb = 446
	scriptUpdateSpecOrb      = 2792
)

func (c *hostClient) debilitated() bool {
	return c.varbits[pluginapi.VarbitParasite] > 0 ||
		c.varps[pluginapi.VarpPoison] > 0 ||
		c.varps[pluginapi.VarpDiseaseValue] > 0
}

func (c *hostClient) hasSpecWeapon() bool {
	_, ok := specAttackCosts[c.weapon()]
	return ok
}

// runOrbScripts resets both orbs to the client's default look and posts
// ScriptPostFired for each, the way the real client does once a frame.
func (c *hostClient) runOrbScripts() {
	if c.state != pluginapi.LoggedIn {
		return
	}
	if hp := c.orb(pluginapi.ComponentMinimapHealthOrb); hp != nil {
		debilitated := c.debilitated()
		hp.SetHidden(!debilitated)
		hp.SetNoClickThrough(debilitated)
		c.bus.Post(pluginapi.ScriptPostFired{ScriptID: scriptUpdateHitpointsOrb})
	}
	if spec := c.orb(pluginapi.ComponentMinimapSpecOrb); spec != nil {
		spec.SetHidden(!c.hasSpecWeapon())
		spec.SetNoClickThrough(false)
		c.bus.Post(pluginapi.ScriptPostFired{ScriptID: scriptUpdateSpecOrb})
	}
}
