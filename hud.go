package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
)

// HUD is the always-on overlay: droplet status in the top left and a reset
// button next to it.
type HUD struct {
	game   *Game
	ui     *ebitenui.UI
	status *widget.Text
}

func NewHUD(g *Game) *HUD {
	face := uiFace()
	h := &HUD{game: g}

	h.status = widget.NewText(
		widget.TextOpts.Text(h.statusText(), face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	resetBtn := newButton(fmt.Sprintf("Reset (%s)", g.spec.ResetKey), face, g.RequestReset)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)
	panel.AddChild(h.status)
	panel.AddChild(resetBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) statusText() string {
	w := h.game.world
	state := component.DropletFalling
	if d, ok := ecs.Get(w, h.game.scene.Droplet, component.DropletComponent.Kind()); ok {
		state = d.State
	}
	return fmt.Sprintf("Droplet: %-8s  Particles: %2d", state, ecs.Count(w, component.SplashParticleComponent.Kind()))
}

func (h *HUD) Update() {
	h.status.Label = h.statusText()
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
