// Package pluginapi defines the surface the client exposes to compiled
// plugins: the client state queries, the client thread, the event bus and
// the configuration store.
//
// Plugins never own any of these. Widgets in particular may disappear
// whenever their interface group reloads, so plugins should treat every
// Widget they hold as a cache that can go stale.
package pluginapi

// GameState is the session state of the client.
type GameState int

const (
	LoginScreen GameState = iota
	Loading
	LoggedIn
	Hopping
)

func (s GameState) String() string {
	switch s {
	case LoginScreen:
		return "login screen"
	case Loading:
		return "loading"
	case LoggedIn:
		return "logged in"
	case Hopping:
		return "hopping"
	}
	return "unknown"
}

// ComponentID addresses a widget as group<<16 | child.
type ComponentID int32

// Component packs a group and child index into a ComponentID.
func Component(group, child int) ComponentID {
	return ComponentID(group<<16 | child&0xffff)
}

// Group returns the interface group of the component.
func (c ComponentID) Group() int { return int(c) >> 16 }

// Child returns the child index of the component within its group.
func (c ComponentID) Child() int { return int(c) & 0xffff }

const (
	InterfaceMinimap = 160

	minimapHealthOrbChild = 7
	minimapSpecOrbChild   = 34
)

var (
	ComponentMinimapHealthOrb = Component(InterfaceMinimap, minimapHealthOrbChild)
	ComponentMinimapSpecOrb   = Component(InterfaceMinimap, minimapSpecOrbChild)
)

// Widget is a live element of the client's interface tree.
type Widget interface {
	ID() ComponentID
	Hidden() bool
	SetHidden(hidden bool)
	NoClickThrough() bool
	SetNoClickThrough(block bool)
	// StaticChildren returns the widget's fixed children in layout order.
	StaticChildren() []Widget
}

// InventoryID identifies an item container.
type InventoryID int

const InventoryEquipment InventoryID = 94

// Item is a stack in an item container. Empty slots carry ID -1.
type Item struct {
	ID       int
	Quantity int
}

// ItemContainer is a snapshot of an inventory-like container.
type ItemContainer struct {
	ID    InventoryID
	Items []Item
}

// EnumComposition is a read-only int keyed table from the game cache.
type EnumComposition interface {
	Keys() []int
	IntValue(key int) int
}

// Cache ids read by plugins.
const (
	EnumSpecialAttackCosts = 906

	VarbitParasite   = 10151
	VarpPoison       = 102
	VarpDiseaseValue = 456
)

// Client exposes game state to plugins. All methods must be called from
// the client thread.
type Client interface {
	GameState() GameState
	// IsResized reports whether the client uses a resizable layout.
	IsResized() bool
	// Widget returns nil when the component is not loaded.
	Widget(id ComponentID) Widget
	// ItemContainer returns nil when the container is unknown.
	ItemContainer(id InventoryID) *ItemContainer
	// Enum returns nil when the enum is not in the cache.
	Enum(id int) EnumComposition
	VarbitValue(id int) int
	VarpValue(id int) int
}

// ClientThread schedules work onto the client thread.
type ClientThread interface {
	// InvokeLater runs fn once on the client thread.
	InvokeLater(fn func())
	// Invoke runs fn on the client thread on every tick until it returns true.
	Invoke(fn func() bool)
}

// EventKind identifies the type of an Event.
type EventKind int

const (
	KindWidgetLoaded EventKind = iota
	KindScriptPostFired
	KindConfigChanged
	KindGameStateChanged
)

// Event is a client notification.
type Event interface {
	Kind() EventKind
}

// WidgetLoaded is posted after an interface group is (re)built.
type WidgetLoaded struct {
	GroupID int
}

func (WidgetLoaded) Kind() EventKind { return KindWidgetLoaded }

// ScriptPostFired is posted after a client script finishes.
type ScriptPostFired struct {
	ScriptID int
}

func (ScriptPostFired) Kind() EventKind { return KindScriptPostFired }

// ConfigChanged is posted when a stored config value changes. It may be
// delivered on any goroutine.
type ConfigChanged struct {
	Group    string
	Key      string
	OldValue string
	NewValue string
}

func (ConfigChanged) Kind() EventKind { return KindConfigChanged }

// GameStateChanged is posted when the session state changes.
type GameStateChanged struct {
	State GameState
}

func (GameStateChanged) Kind() EventKind { return KindGameStateChanged }

// Handler receives events of the kind it was subscribed to.
type Handler func(Event)

// EventBus delivers events to subscribed handlers.
type EventBus interface {
	Subscribe(owner string, kind EventKind, handler Handler)
	Unsubscribe(owner string)
	Post(ev Event)
}

// ConfigStore holds per-group plugin settings.
type ConfigStore interface {
	Bool(group, key string) bool
	SetBool(group, key string, v bool)
}

// Descriptor describes a plugin to the plugin manager.
type Descriptor struct {
	Name        string
	Description string
	Tags        []string
	// Conflicts names plugins that cannot run alongside this one.
	Conflicts []string
}

// Plugin is a compiled plugin managed by the client.
type Plugin interface {
	Descriptor() Descriptor
	StartUp() error
	ShutDown() error
}
