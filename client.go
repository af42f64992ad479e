package main

import (
	"sort"

	"clickorbs/eventbus"
	"clickorbs/pluginapi"
	"clickorbs/widget"
)

const (
	screenWidth  = 800
	screenHeight = 600

	equipmentSlots = 14
	weaponSlot     = 3
)

// Item ids used by the sandbox. Every id in specAttackCosts shows the
// special attack orb when wielded.
const (
	itemBronzeSword    = 1277
	itemAbyssalWhip    = 4151
	itemDragonDagger   = 1215
	itemDragonScimitar = 4587
	itemArmadylGS      = 11802
)

var specAttackCosts = enumTable{
	itemAbyssalWhip:    50,
	itemDragonDagger:   25,
	itemDragonScimitar: 55,
	itemArmadylGS:      50,
	1305:               25, // dragon longsword
	861:                55, // magic shortbow
	13652:              50, // dragon claws
}

type enumTable map[int]int

func (e enumTable) Keys() []int {
	keys := make([]int, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (e enumTable) IntValue(key int) int { return e[key] }

// hostClient is the sandbox game state. Everything here belongs to the
// client thread; other goroutines go through clThread.
type hostClient struct {
	state     pluginapi.GameState
	resized   bool
	tree      *widget.Tree
	equipment []pluginapi.Item
	varbits   map[int]int
	varps     map[int]int
	enums     map[int]enumTable
	bus       *eventbus.Bus
}

func newHostClient(bus *eventbus.Bus, resized bool) *hostClient {
	c := &hostClient{
		state:     pluginapi.LoginScreen,
		resized:   resized,
		tree:      widget.NewTree(),
		equipment: make([]pluginapi.Item, equipmentSlots),
		varbits:   map[int]int{},
		varps:     map[int]int{},
		enums:     map[int]enumTable{pluginapi.EnumSpecialAttackCosts: specAttackCosts},
		bus:       bus,
	}
	for i := range c.equipment {
		c.equipment[i] = pluginapi.Item{ID: -1}
	}
	return c
}

func (c *hostClient) GameState() pluginapi.GameState { return c.state }

func (c *hostClient) IsResized() bool { return c.resized }

func (c *hostClient) Widget(id pluginapi.ComponentID) pluginapi.Widget {
	if w := c.tree.Get(id); w != nil {
		return w
	}
	return nil
}

// ItemContainer only knows the equipment, and only while logged in.
func (c *hostClient) ItemContainer(id pluginapi.InventoryID) *pluginapi.ItemContainer {
	if id != pluginapi.InventoryEquipment || c.state != pluginapi.LoggedIn {
		return nil
	}
	return &pluginapi.ItemContainer{
		ID:    id,
		Items: append([]pluginapi.Item(nil), c.equipment...),
	}
}

func (c *hostClient) Enum(id int) pluginapi.EnumComposition {
	if e, ok := c.enums[id]; ok {
		return e
	}
	return nil
}

func (c *hostClient) VarbitValue(id int) int { return c.varbits[id] }

func (c *hostClient) VarpValue(id int) int { return c.varps[id] }

func (c *hostClient) setGameState(s pluginapi.GameState) {
	if c.state == s {
		return
	}
	c.state = s
	if s == pluginapi.LoggedIn {
		c.loadMinimap()
	} else {
		c.tree.Unload(pluginapi.InterfaceMinimap)
	}
	c.bus.Post(pluginapi.GameStateChanged{State: s})
}

// setResized switches layout, which rebuilds the minimap.
func (c *hostClient) setResized(resized bool) {
	if c.resized == resized {
		return
	}
	c.resized = resized
	if c.state == pluginapi.LoggedIn {
		c.loadMinimap()
	}
}

func (c *hostClient) loadMinimap() {
	root := widget.BuildMinimap(widget.Layout{Resizable: c.resized, ScreenW: screenWidth})
	c.tree.LoadGroup(pluginapi.InterfaceMinimap, root)
	c.bus.Post(pluginapi.WidgetLoaded{GroupID: pluginapi.InterfaceMinimap})
}

func (c *hostClient) wield(itemID int) {
	c.equipment[weaponSlot] = pluginapi.Item{ID: itemID, Quantity: 1}
}

func (c *hostClient) unwield() {
	c.equipment[weaponSlot] = pluginapi.Item{ID: -1}
}

func (c *hostClient) weapon() int {
	return c.equipment[weaponSlot].ID
}

// orb returns the clickable child of an orb container.
func (c *hostClient) orb(container pluginapi.ComponentID) *widget.Widget {
	w := c.tree.Get(container)
	if w == nil || len(w.Children()) < 2 {
		return nil
	}
	return w.Children()[1]
}
