// Package clickorbs stops clicks from passing through the hitpoints and
// special attack orbs on the minimap in the resizable layout.
//
// The client's own orb scripts reset the orb widgets every frame, so the
// plugin listens for those scripts and asserts its state again whenever
// an orb has become permeable.
package clickorbs

import (
	"log"
	"time"

	"golang.org/x/time/rate"

	"clickorbs/config"
	"clickorbs/pluginapi"
)

// Owner is the name the plugin registers its handlers under.
const Owner = "clickorbs"

const (
	scriptUpdateHitpointsOrb = 446
	scriptUpdateSpecOrb      = 2792
)

type orb struct {
	name      string
	component pluginapi.ComponentID
	key       string

	// consume and widget are only touched on the client thread.
	consume bool
	widget  pluginapi.Widget
}

// Plugin is the click-through controller for the minimap orbs.
type Plugin struct {
	client pluginapi.Client
	thread pluginapi.ClientThread
	bus    pluginapi.EventBus
	cfg    pluginapi.ConfigStore

	hitpoints orb
	spec      orb
	active    bool

	reassertLog rate.Sometimes
}

// New returns a stopped plugin.
func New(client pluginapi.Client, thread pluginapi.ClientThread, bus pluginapi.EventBus, cfg pluginapi.ConfigStore) *Plugin {
	return &Plugin{
		client: client,
		thread: thread,
		bus:    bus,
		cfg:    cfg,
		hitpoints: orb{
			name:      "hitpoints",
			component: pluginapi.ComponentMinimapHealthOrb,
			key:       KeyHitpointsOrb,
		},
		spec: orb{
			name:      "special attack",
			component: pluginapi.ComponentMinimapSpecOrb,
			key:       KeySpecialAttackOrb,
		},
		reassertLog: rate.Sometimes{Interval: time.Second},
	}
}

func (p *Plugin) Descriptor() pluginapi.Descriptor {
	return pluginapi.Descriptor{
		Name:        "Click Minimap Orbs",
		Description: "Prevents clicking through the minimap orbs on resizable mode",
		Tags:        []string{"minimap", "status", "orbs", "click", "through"},
		Conflicts:   []string{"ClickMinimapOrbsPlugin"},
	}
}

// ConfigGroup lets the plugin manager register the plugin's options.
func (p *Plugin) ConfigGroup() (string, []config.Item) {
	return ConfigGroup, ConfigItems()
}

// StartUp subscribes to client events and applies the stored settings
// once the client thread next runs.
func (p *Plugin) StartUp() error {
	p.bus.Subscribe(Owner, pluginapi.KindConfigChanged, p.onConfigChanged)
	p.bus.Subscribe(Owner, pluginapi.KindWidgetLoaded, p.onWidgetLoaded)
	p.bus.Subscribe(Owner, pluginapi.KindScriptPostFired, p.onScriptPostFired)

	p.thread.InvokeLater(func() {
		p.active = true
		p.loadSettings()

		if p.client.GameState() != pluginapi.LoggedIn {
			return
		}
		p.resolve(&p.spec)
		p.resolve(&p.hitpoints)

		if !p.client.IsResized() {
			return
		}
		p.setSpecOrbConsuming(p.spec.consume)
		p.setHitpointsOrbConsuming(p.hitpoints.consume)
	})
	return nil
}

// ShutDown unsubscribes and leaves both orbs letting clicks through.
func (p *Plugin) ShutDown() error {
	p.bus.Unsubscribe(Owner)

	p.thread.InvokeLater(func() {
		p.active = false
		if p.client.GameState() != pluginapi.LoggedIn {
			return
		}
		p.release(&p.spec)
		p.release(&p.hitpoints)
	})
	return nil
}

func (p *Plugin) loadSettings() {
	p.spec.consume = p.cfg.Bool(ConfigGroup, p.spec.key)
	p.hitpoints.consume = p.cfg.Bool(ConfigGroup, p.hitpoints.key)
}

// onConfigChanged may run on any goroutine.
func (p *Plugin) onConfigChanged(ev pluginapi.Event) {
	e, ok := ev.(pluginapi.ConfigChanged)
	if !ok || !config.SameGroup(e.Group, ConfigGroup) {
		return
	}

	p.thread.InvokeLater(func() {
		if !p.active {
			return
		}
		p.loadSettings()

		if !p.client.IsResized() {
			return
		}
		p.setSpecOrbConsuming(p.spec.consume)
		p.setHitpointsOrbConsuming(p.hitpoints.consume)
	})
}

func (p *Plugin) onWidgetLoaded(ev pluginapi.Event) {
	e, ok := ev.(pluginapi.WidgetLoaded)
	if !ok || e.GroupID != pluginapi.InterfaceMinimap {
		return
	}
	p.resolve(&p.spec)
	p.resolve(&p.hitpoints)
}

func (p *Plugin) onScriptPostFired(ev pluginapi.Event) {
	e, ok := ev.(pluginapi.ScriptPostFired)
	if !ok || !p.active || !p.client.IsResized() {
		return
	}

	switch e.ScriptID {
	case scriptUpdateHitpointsOrb:
		if p.reassert(&p.hitpoints) {
			p.setHitpointsOrbConsuming(p.hitpoints.consume)
		}
	case scriptUpdateSpecOrb:
		if p.reassert(&p.spec) {
			p.setSpecOrbConsuming(p.spec.consume)
		}
	}
}

// reassert resolves o if needed and reports whether the client's script
// left it permeable.
func (p *Plugin) reassert(o *orb) bool {
	if o.widget == nil {
		p.resolve(o)
	}
	if o.widget == nil || !permeable(o.widget) {
		return false
	}
	p.reassertLog.Do(func() {
		log.Printf("[clickorbs] %s orb reset by client script, reapplying", o.name)
	})
	return true
}

// resolve looks up the orb button, the second static child of the orb
// container. The handle is cleared when the container is missing.
func (p *Plugin) resolve(o *orb) {
	o.widget = nil
	container := p.client.Widget(o.component)
	if container == nil {
		return
	}
	children := container.StaticChildren()
	if len(children) < 2 || children[1] == nil {
		return
	}
	o.widget = children[1]
}

func (p *Plugin) release(o *orb) {
	if o.widget == nil {
		return
	}
	apply(o.widget, passThrough)
}

func (p *Plugin) setSpecOrbConsuming(consume bool) {
	if p.spec.widget == nil {
		return
	}
	apply(p.spec.widget, SpecOrbFlags(consume, !consume && p.hasSpecialAttackItem()))
}

func (p *Plugin) setHitpointsOrbConsuming(consume bool) {
	if p.hitpoints.widget == nil {
		return
	}
	apply(p.hitpoints.widget, HitpointsOrbFlags(consume, p.isDebilitated()))
}

// hasSpecialAttackItem reports whether any equipped item appears in the
// special attack energy cost enum.
func (p *Plugin) hasSpecialAttackItem() bool {
	equipment := p.client.ItemContainer(pluginapi.InventoryEquipment)
	if equipment == nil {
		return false
	}
	costs := p.client.Enum(pluginapi.EnumSpecialAttackCosts)
	if costs == nil {
		return false
	}
	keys := costs.Keys()
	for _, it := range equipment.Items {
		if it.ID < 0 {
			continue
		}
		for _, k := range keys {
			if it.ID == k {
				return true
			}
		}
	}
	return false
}

func (p *Plugin) isDebilitated() bool {
	return p.client.VarbitValue(pluginapi.VarbitParasite) > 0 ||
		p.client.VarpValue(pluginapi.VarpPoison) > 0 ||
		p.client.VarpValue(pluginapi.VarpDiseaseValue) > 0
}
