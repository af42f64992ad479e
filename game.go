package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"clickorbs/clickorbs"
	"clickorbs/pluginapi"
	"clickorbs/widget"
)

var (
	colWorld     = color.RGBA{0x3a, 0x4a, 0x2a, 0xff}
	colMinimap   = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colHealth    = color.RGBA{0xc0, 0x20, 0x20, 0xff}
	colSpec      = color.RGBA{0x30, 0x90, 0xd0, 0xff}
	colBlocking  = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colHiddenOrb = color.RGBA{0x80, 0x80, 0x80, 0x60}
	colMarker    = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

const consoleLines = 8

var helpText = []string{
	"F1 layout  F2 login/logout  E equip  P poison  D disease",
	"1 toggle hp orb block  2 toggle spec orb block  H help  Esc quit",
}

// game is the ebiten loop. Update is the client thread.
type game struct {
	frames    uint64
	quit      bool
	walkTo    image.Point
	hasWalkTo bool
}

func (g *game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	clThread.Drain()
	hc.runOrbScripts()
	g.handleInput()
	g.frames++
	return nil
}

func (g *game) handleInput() {
	keys := []struct {
		key ebiten.Key
		cmd string
	}{
		{ebiten.KeyF1, "/layout"},
		{ebiten.KeyE, "/equip"},
		{ebiten.KeyP, "/poison"},
		{ebiten.KeyD, "/disease"},
		{ebiten.KeyDigit1, "/orbs hp"},
		{ebiten.KeyDigit2, "/orbs spec"},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			runCommand(k.cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if hc.state == pluginapi.LoggedIn {
			runCommand("/logout")
		} else {
			runCommand("/login")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		gs.ShowHelp = !gs.ShowHelp
		settingsDirty.Store(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(x, y)
	}
}

// click routes a left click to the interface first and to the world when
// no widget blocks it.
func (g *game) click(x, y int) {
	if hc.state != pluginapi.LoggedIn {
		return
	}
	if w := hc.tree.HitTest(x, y); w != nil {
		consoleMessage(fmt.Sprintf("Clicked %s", w.Name))
		return
	}
	g.walkTo = image.Pt(x, y)
	g.hasWalkTo = true
	consoleMessage(fmt.Sprintf("Walk here (%d, %d)", x, y))
}

func (g *game) Draw(screen *ebiten.Image) {
	if hc.state != pluginapi.LoggedIn {
		screen.Fill(color.Black)
		ebitenutil.DebugPrintAt(screen, "Login screen - press F2 to log in", 300, 280)
		g.drawConsole(screen)
		return
	}
	screen.Fill(colWorld)
	if g.hasWalkTo {
		vector.StrokeCircle(screen, float32(g.walkTo.X), float32(g.walkTo.Y), 6, 2, colMarker, true)
	}
	for _, group := range hc.tree.Groups() {
		for _, root := range hc.tree.Roots(group) {
			drawWidget(screen, root)
		}
	}
	g.drawStatus(screen)
	g.drawConsole(screen)
}

func drawWidget(screen *ebiten.Image, w *widget.Widget) {
	if w.SelfHidden() {
		if isOrb(w) {
			drawOrb(screen, w, colHiddenOrb)
		}
		return
	}
	switch {
	case w.ID() == pluginapi.Component(pluginapi.InterfaceMinimap, 0):
		b := w.Bounds
		vector.DrawFilledCircle(screen, float32(b.Min.X+b.Dx()/2+20), float32(b.Min.Y+b.Dy()/2),
			float32(b.Dy()/2), colMinimap, true)
	case isOrb(w):
		c := colSpec
		if w.Parent().ID() == pluginapi.ComponentMinimapHealthOrb {
			c = colHealth
		}
		drawOrb(screen, w, c)
	}
	for _, c := range w.Children() {
		drawWidget(screen, c)
	}
}

func isOrb(w *widget.Widget) bool {
	p := w.Parent()
	if p == nil {
		return false
	}
	id := p.ID()
	if id != pluginapi.ComponentMinimapHealthOrb && id != pluginapi.ComponentMinimapSpecOrb {
		return false
	}
	kids := p.Children()
	return len(kids) > 1 && kids[1] == w
}

func drawOrb(screen *ebiten.Image, w *widget.Widget, c color.Color) {
	b := w.Bounds
	cx := float32(b.Min.X + b.Dx()/2)
	cy := float32(b.Min.Y + b.Dy()/2)
	r := float32(b.Dx() / 2)
	vector.DrawFilledCircle(screen, cx, cy, r, c, true)
	if w.NoClickThrough() && !w.Hidden() {
		vector.StrokeCircle(screen, cx, cy, r+1, 2, colBlocking, true)
	}
}

func (g *game) drawStatus(screen *ebiten.Image) {
	layout := "fixed"
	if hc.resized {
		layout = "resizable"
	}
	lines := []string{
		fmt.Sprintf("layout: %s  weapon: %d  poison: %d  disease: %d  parasite: %d",
			layout, hc.weapon(), hc.varps[pluginapi.VarpPoison],
			hc.varps[pluginapi.VarpDiseaseValue], hc.varbits[pluginapi.VarbitParasite]),
		fmt.Sprintf("block hp orb: %v  block spec orb: %v",
			configs.Bool(clickorbs.ConfigGroup, clickorbs.KeyHitpointsOrb),
			configs.Bool(clickorbs.ConfigGroup, clickorbs.KeySpecialAttackOrb)),
	}
	if hp := hc.orb(pluginapi.ComponentMinimapHealthOrb); hp != nil {
		lines = append(lines, fmt.Sprintf("hp orb: hidden=%v noClickThrough=%v", hp.Hidden(), hp.NoClickThrough()))
	}
	if spec := hc.orb(pluginapi.ComponentMinimapSpecOrb); spec != nil {
		lines = append(lines, fmt.Sprintf("spec orb: hidden=%v noClickThrough=%v", spec.Hidden(), spec.NoClickThrough()))
	}
	if gs.ShowHelp {
		lines = append(lines, helpText...)
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, 8)
}

func (g *game) drawConsole(screen *ebiten.Image) {
	msgs := recentConsoleMessages(consoleLines)
	y := screenHeight - 16*len(msgs) - 8
	vector.DrawFilledRect(screen, 0, float32(y-4), 520, float32(screenHeight-y+4), color.RGBA{0, 0, 0, 0x90}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(msgs, "\n"), 8, y)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
