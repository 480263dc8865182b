package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/entity"
	"github.com/milk9111/splash/prefabs"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func newTestScene(t *testing.T) (*ecs.World, *entity.Scene, *prefabs.SceneSpec) {
	t.Helper()
	spec := prefabs.DefaultSceneSpec()
	w := ecs.NewWorld()
	scene, err := entity.NewScene(w, nil, &spec)
	require.NoError(t, err)
	return w, scene, &spec
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// fakeInput reports keys as just pressed only on the first frame they are
// held, like inpututil.
type fakeInput struct {
	held    map[ebiten.Key]int
	pressed map[ebiten.Key]bool
	buttons map[ebiten.MouseButton]bool
	x, y    int
	wheelY  float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:    make(map[ebiten.Key]int),
		pressed: make(map[ebiten.Key]bool),
		buttons: make(map[ebiten.MouseButton]bool),
	}
}

// tick advances one frame of key state.
func (f *fakeInput) tick() {
	for k, down := range f.pressed {
		if down {
			f.held[k]++
		} else {
			f.held[k] = 0
		}
	}
}

func (f *fakeInput) IsKeyJustPressed(key ebiten.Key) bool {
	return f.pressed[key] && f.held[key] == 1
}

func (f *fakeInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return f.buttons[button]
}

func (f *fakeInput) CursorPosition() (int, int) {
	return f.x, f.y
}

func (f *fakeInput) Wheel() (float64, float64) {
	return 0, f.wheelY
}
