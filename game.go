package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/splash/common"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/entity"
	"github.com/milk9111/splash/ecs/render"
	"github.com/milk9111/splash/ecs/system"
	"github.com/milk9111/splash/prefabs"
)

type Game struct {
	debug bool

	spec    *prefabs.SceneSpec
	world   *ecs.World
	assets  *render.Assets
	scene   *entity.Scene
	input   *system.InputSystem
	physics *system.PhysicsSystem

	watcher *prefabs.Watcher
	hud     *HUD
	pauseUI *ebitenui.UI

	pauseKey ebiten.Key
	paused   bool
}

func NewGame(debug, watch bool) (*Game, error) {
	g := &Game{debug: debug}

	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Printf("game: %v, using default scene", err)
		def := prefabs.DefaultSceneSpec()
		spec = &def
	}
	if err := g.load(spec); err != nil {
		return nil, err
	}

	if watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = watcher
		}
	}

	g.hud = NewHUD(g)
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// load builds a fresh world from spec.
func (g *Game) load(spec *prefabs.SceneSpec) error {
	clearColor, err := prefabs.ParseHexColor(spec.ClearColor)
	if err != nil {
		return fmt.Errorf("game: clear color: %w", err)
	}
	resetKey, err := prefabs.Key(spec.ResetKey)
	if err != nil {
		log.Printf("game: %v, using R", err)
		resetKey = ebiten.KeyR
	}
	pauseKey, err := prefabs.Key(spec.PauseKey)
	if err != nil {
		log.Printf("game: %v, using Escape", err)
		pauseKey = ebiten.KeyEscape
	}

	world := ecs.NewWorld()
	assets := render.NewAssets()
	scene, err := entity.NewScene(world, assets, spec)
	if err != nil {
		return fmt.Errorf("game: build scene: %w", err)
	}

	input := system.NewInputSystem(resetKey)
	physics := system.NewPhysicsSystem(spec.Physics.Timestep, spec.Physics.Gravity, spec.Physics.Iterations)

	world.AddSystem(input)
	world.AddSystem(system.NewOrbitCameraSystem())
	world.AddSystem(physics)
	world.AddSystem(system.NewLightOrbitSystem())
	world.AddSystem(system.NewDropletWobbleSystem())
	world.AddSystem(system.NewResetSystem())
	world.AddSystem(system.NewSplashSystem(assets, spec.Particles, nil))
	world.AddSystem(system.NewRenderSystem(assets, clearColor))
	if g.debug {
		world.AddSystem(system.NewPhysicsDebugSystem(physics))
	}

	g.spec = spec
	g.world = world
	g.assets = assets
	g.scene = scene
	g.input = input
	g.physics = physics
	g.pauseKey = pauseKey
	return nil
}

func (g *Game) reload() {
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Printf("game: reload: %v", err)
		return
	}
	if err := g.load(spec); err != nil {
		log.Printf("game: reload: %v", err)
		return
	}
	log.Printf("game: reloaded %s", prefabs.SceneFile)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	if len(g.watcher.Poll()) > 0 {
		g.reload()
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: watcher: %v", err)
		}
	default:
	}
}

// RequestReset resets the droplet on the next simulated frame.
func (g *Game) RequestReset() {
	g.input.RequestReset()
}

func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

func (g *Game) frameStep() time.Duration {
	return time.Duration(g.spec.Physics.Timestep * float64(time.Second))
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(g.pauseKey) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.hud.Update()
	g.world.Clock().Advance(g.frameStep())
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	g.hud.Draw(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
