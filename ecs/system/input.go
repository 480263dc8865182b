package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
)

// InputSource is the slice of ebiten input the scene reads.
type InputSource interface {
	IsKeyJustPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (int, int)
	Wheel() (float64, float64)
}

type ebitenInput struct{}

func (ebitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

type InputSystem struct {
	source   InputSource
	resetKey ebiten.Key

	lastX, lastY int
	tracking     bool

	resetRequested bool
}

func NewInputSystem(resetKey ebiten.Key) *InputSystem {
	return NewInputSystemWithSource(ebitenInput{}, resetKey)
}

func NewInputSystemWithSource(source InputSource, resetKey ebiten.Key) *InputSystem {
	if source == nil {
		source = ebitenInput{}
	}
	return &InputSystem{source: source, resetKey: resetKey}
}

// RequestReset makes the next update report a reset press, as if the reset
// key had just gone down.
func (i *InputSystem) RequestReset() {
	if i == nil {
		return
	}
	i.resetRequested = true
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	reset := i.source.IsKeyJustPressed(i.resetKey) || i.resetRequested
	i.resetRequested = false

	x, y := i.source.CursorPosition()
	orbiting := i.source.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	panning := i.source.IsMouseButtonPressed(ebiten.MouseButtonRight)

	var dx, dy float64
	if (orbiting || panning) && i.tracking {
		dx = float64(x - i.lastX)
		dy = float64(y - i.lastY)
	}
	i.lastX, i.lastY = x, y
	i.tracking = orbiting || panning

	_, wheelY := i.source.Wheel()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = component.Input{ResetPressed: reset, Zoom: wheelY}
		if orbiting {
			input.OrbitDX = dx
			input.OrbitDY = dy
		} else if panning {
			input.PanDX = dx
			input.PanDY = dy
		}
	})
}
