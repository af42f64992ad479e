package widget

import (
	"image"

	"clickorbs/pluginapi"
)

// Static child ids inside the minimap group.
const (
	minimapFrameChild       = 0
	minimapHealthOrbBgChild = 40
	minimapHealthOrbChild   = 41
	minimapSpecOrbBgChild   = 42
	minimapSpecOrbChild     = 43
)

const (
	orbSize       = 28
	orbContainerW = 58
	orbContainerH = 34
)

// Layout places the minimap on screen.
type Layout struct {
	Resizable bool
	ScreenW   int
}

func (l Layout) origin() image.Point {
	if l.Resizable {
		return image.Pt(l.ScreenW-210, 4)
	}
	return image.Pt(l.ScreenW-250, 4)
}

// MinimapBounds returns the minimap frame rectangle for the layout.
func (l Layout) MinimapBounds() image.Rectangle {
	o := l.origin()
	return image.Rect(o.X, o.Y, o.X+206, o.Y+170)
}

// BuildMinimap builds the minimap group. Each orb container holds a
// background at static index 0 and the orb itself at static index 1.
func BuildMinimap(l Layout) *Widget {
	o := l.origin()
	frame := New(pluginapi.Component(pluginapi.InterfaceMinimap, minimapFrameChild), "minimap", l.MinimapBounds())

	health := orbContainer(pluginapi.ComponentMinimapHealthOrb, "health orb", image.Pt(o.X, o.Y+48),
		minimapHealthOrbBgChild, minimapHealthOrbChild)
	spec := orbContainer(pluginapi.ComponentMinimapSpecOrb, "spec orb", image.Pt(o.X+24, o.Y+124),
		minimapSpecOrbBgChild, minimapSpecOrbChild)

	return frame.Add(health, spec)
}

func orbContainer(id pluginapi.ComponentID, name string, at image.Point, bgChild, orbChild int) *Widget {
	bounds := image.Rect(at.X, at.Y, at.X+orbContainerW, at.Y+orbContainerH)
	c := New(id, name, bounds)
	bg := New(pluginapi.Component(pluginapi.InterfaceMinimap, bgChild), name+" background", bounds)
	orbMin := image.Pt(at.X+orbContainerW-orbSize-3, at.Y+(orbContainerH-orbSize)/2)
	orb := New(pluginapi.Component(pluginapi.InterfaceMinimap, orbChild), name+" button",
		image.Rectangle{Min: orbMin, Max: orbMin.Add(image.Pt(orbSize, orbSize))})
	return c.Add(bg, orb)
}
