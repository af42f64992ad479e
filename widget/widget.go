// Package widget is the client's interface tree: groups of widgets
// addressed by component id, with the visibility and click-through flags
// plugins toggle.
package widget

import (
	"image"

	"clickorbs/pluginapi"
)

// Widget is a node of the interface tree. Widgets are only touched on the
// client thread and carry no locking.
type Widget struct {
	id     pluginapi.ComponentID
	Name   string
	Bounds image.Rectangle

	hidden         bool
	noClickThrough bool

	parent   *Widget
	children []*Widget
	stale    bool
}

// New returns a visible widget that lets clicks pass through.
func New(id pluginapi.ComponentID, name string, bounds image.Rectangle) *Widget {
	return &Widget{id: id, Name: name, Bounds: bounds}
}

// Add appends static children and returns w for chaining.
func (w *Widget) Add(children ...*Widget) *Widget {
	for _, c := range children {
		c.parent = w
		w.children = append(w.children, c)
	}
	return w
}

func (w *Widget) ID() pluginapi.ComponentID { return w.id }

// Hidden reports whether the widget or any ancestor is hidden.
func (w *Widget) Hidden() bool {
	for p := w; p != nil; p = p.parent {
		if p.hidden {
			return true
		}
	}
	return false
}

// SelfHidden reports the widget's own hidden flag.
func (w *Widget) SelfHidden() bool { return w.hidden }

func (w *Widget) SetHidden(hidden bool) { w.hidden = hidden }

func (w *Widget) NoClickThrough() bool { return w.noClickThrough }

func (w *Widget) SetNoClickThrough(block bool) { w.noClickThrough = block }

// StaticChildren returns the children in layout order.
func (w *Widget) StaticChildren() []pluginapi.Widget {
	out := make([]pluginapi.Widget, len(w.children))
	for i, c := range w.children {
		out[i] = c
	}
	return out
}

// Children returns the concrete children in layout order.
func (w *Widget) Children() []*Widget { return w.children }

// Parent returns the enclosing widget or nil for a group root.
func (w *Widget) Parent() *Widget { return w.parent }

// Stale reports whether the widget's group was reloaded or unloaded since
// the widget was built.
func (w *Widget) Stale() bool { return w.stale }

func (w *Widget) walk(fn func(*Widget)) {
	fn(w)
	for _, c := range w.children {
		c.walk(fn)
	}
}

// hit returns the deepest widget under pt that blocks clicks.
func (w *Widget) hit(pt image.Point) *Widget {
	if w.hidden || !pt.In(w.Bounds) {
		return nil
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		if h := w.children[i].hit(pt); h != nil {
			return h
		}
	}
	if w.noClickThrough {
		return w
	}
	return nil
}
