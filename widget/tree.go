package widget

import (
	"image"
	"sort"

	"clickorbs/pluginapi"
)

// Tree indexes loaded interface groups by component id.
type Tree struct {
	roots map[int][]*Widget
	index map[pluginapi.ComponentID]*Widget
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{
		roots: make(map[int][]*Widget),
		index: make(map[pluginapi.ComponentID]*Widget),
	}
}

// LoadGroup replaces the widgets of group with roots. Widgets of the
// previous load are marked stale and can no longer be found.
func (t *Tree) LoadGroup(group int, roots ...*Widget) {
	t.Unload(group)
	t.roots[group] = roots
	for _, r := range roots {
		r.walk(func(w *Widget) {
			if w.id.Group() == group {
				t.index[w.id] = w
			}
		})
	}
}

// Unload removes group from the tree.
func (t *Tree) Unload(group int) {
	for _, r := range t.roots[group] {
		r.walk(func(w *Widget) {
			w.stale = true
			if t.index[w.id] == w {
				delete(t.index, w.id)
			}
		})
	}
	delete(t.roots, group)
}

// Loaded reports whether group is loaded.
func (t *Tree) Loaded(group int) bool {
	_, ok := t.roots[group]
	return ok
}

// Get returns the widget with id or nil.
func (t *Tree) Get(id pluginapi.ComponentID) *Widget {
	return t.index[id]
}

// Groups returns the loaded groups in ascending order, which is also
// their draw order.
func (t *Tree) Groups() []int {
	groups := make([]int, 0, len(t.roots))
	for g := range t.roots {
		groups = append(groups, g)
	}
	sort.Ints(groups)
	return groups
}

// Roots returns the root widgets of group.
func (t *Tree) Roots(group int) []*Widget {
	return t.roots[group]
}

// HitTest returns the topmost visible widget at (x, y) that blocks clicks,
// or nil when the click falls through to the world.
func (t *Tree) HitTest(x, y int) *Widget {
	pt := image.Pt(x, y)
	groups := t.Groups()
	for i := len(groups) - 1; i >= 0; i-- {
		roots := t.roots[groups[i]]
		for j := len(roots) - 1; j >= 0; j-- {
			if h := roots[j].hit(pt); h != nil {
				return h
			}
		}
	}
	return nil
}
