package clickorbs

import "clickorbs/config"

// ConfigGroup carries a suffix so it cannot collide with other plugins
// using the same name.
const ConfigGroup = "clickminimaporbs2d3a8ae"

const (
	KeyHitpointsOrb     = "hitpointsOrb"
	KeySpecialAttackOrb = "specialAttackOrb"
)

// ConfigItems returns the options the plugin stores under ConfigGroup.
func ConfigItems() []config.Item {
	return []config.Item{
		{
			Key:         KeyHitpointsOrb,
			Name:        "Hitpoints",
			Description: "Block clicking through the hitpoints orb",
			Default:     true,
		},
		{
			Key:         KeySpecialAttackOrb,
			Name:        "Special Attack",
			Description: "Block clicking through the special attack orb",
			Default:     true,
		},
	}
}
