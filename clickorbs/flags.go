package clickorbs

import "clickorbs/pluginapi"

// Flags is the pair of widget properties the plugin controls.
type Flags struct {
	Hidden         bool
	NoClickThrough bool
}

// passThrough restores default click behaviour on unload.
var passThrough = Flags{}

var blocking = Flags{Hidden: false, NoClickThrough: true}

// SpecOrbFlags decides the special attack orb state. When not blocking,
// the orb is shown only while a special attack weapon is equipped.
func SpecOrbFlags(block, hasSpecItem bool) Flags {
	if block {
		return blocking
	}
	return Flags{Hidden: !hasSpecItem, NoClickThrough: false}
}

// HitpointsOrbFlags decides the hitpoints orb state. When not blocking,
// the orb is shown and clickable only while the player is poisoned,
// diseased or carries a parasite, which is when the client itself would
// show it.
func HitpointsOrbFlags(block, debilitated bool) Flags {
	if block {
		return blocking
	}
	return Flags{Hidden: !debilitated, NoClickThrough: debilitated}
}

func apply(w pluginapi.Widget, f Flags) {
	w.SetNoClickThrough(f.NoClickThrough)
	w.SetHidden(f.Hidden)
}

// permeable reports whether the client's own orb script has just reset w,
// so the plugin needs to assert its state again.
func permeable(w pluginapi.Widget) bool {
	return w.Hidden() || !w.NoClickThrough()
}
