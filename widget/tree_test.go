package widget

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clickorbs/pluginapi"
)

func loadMinimap(t *testing.T, tree *Tree) (health, spec *Widget) {
	t.Helper()
	tree.LoadGroup(pluginapi.InterfaceMinimap, BuildMinimap(Layout{Resizable: true, ScreenW: 800}))
	hc := tree.Get(pluginapi.ComponentMinimapHealthOrb)
	sc := tree.Get(pluginapi.ComponentMinimapSpecOrb)
	require.NotNil(t, hc)
	require.NotNil(t, sc)
	require.Len(t, hc.Children(), 2)
	require.Len(t, sc.Children(), 2)
	return hc.Children()[1], sc.Children()[1]
}

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func TestComponentIDPacking(t *testing.T) {
	id := pluginapi.Component(pluginapi.InterfaceMinimap, 34)
	assert.Equal(t, pluginapi.InterfaceMinimap, id.Group())
	assert.Equal(t, 34, id.Child())
	assert.Equal(t, pluginapi.ComponentMinimapSpecOrb, id)
}

func TestStaticChildrenExposeOrbAtIndexOne(t *testing.T) {
	tree := NewTree()
	health, _ := loadMinimap(t, tree)
	kids := tree.Get(pluginapi.ComponentMinimapHealthOrb).StaticChildren()
	require.Len(t, kids, 2)
	assert.Same(t, health, kids[1].(*Widget))
}

func TestReloadMarksOldWidgetsStale(t *testing.T) {
	tree := NewTree()
	oldHealth, _ := loadMinimap(t, tree)
	newHealth, _ := loadMinimap(t, tree)

	assert.True(t, oldHealth.Stale())
	assert.False(t, newHealth.Stale())
	assert.NotSame(t, oldHealth, newHealth)

	tree.Unload(pluginapi.InterfaceMinimap)
	assert.False(t, tree.Loaded(pluginapi.InterfaceMinimap))
	assert.Nil(t, tree.Get(pluginapi.ComponentMinimapHealthOrb))
	assert.True(t, newHealth.Stale())
}

func TestHiddenIncludesAncestors(t *testing.T) {
	tree := NewTree()
	health, _ := loadMinimap(t, tree)
	health.Parent().SetHidden(true)
	assert.True(t, health.Hidden())
	assert.False(t, health.SelfHidden())
}

func TestHitTestRespectsClickThrough(t *testing.T) {
	tree := NewTree()
	health, spec := loadMinimap(t, tree)
	hx, hy := center(health.Bounds)
	sx, sy := center(spec.Bounds)

	assert.Nil(t, tree.HitTest(hx, hy), "default orbs let clicks through")

	health.SetNoClickThrough(true)
	assert.Same(t, health, tree.HitTest(hx, hy))
	assert.Nil(t, tree.HitTest(sx, sy))

	health.SetHidden(true)
	assert.Nil(t, tree.HitTest(hx, hy), "hidden orbs never block")

	spec.SetNoClickThrough(true)
	assert.Same(t, spec, tree.HitTest(sx, sy))
	assert.Nil(t, tree.HitTest(0, 0))
}

func TestGroupsSortedForDrawOrder(t *testing.T) {
	tree := NewTree()
	tree.LoadGroup(548, New(pluginapi.Component(548, 0), "viewport", image.Rect(0, 0, 10, 10)))
	tree.LoadGroup(pluginapi.InterfaceMinimap, BuildMinimap(Layout{ScreenW: 800}))
	assert.Equal(t, []int{pluginapi.InterfaceMinimap, 548}, tree.Groups())
	assert.Len(t, tree.Roots(548), 1)
}
