package entity

import (
	"fmt"

	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/render"
	"github.com/milk9111/splash/prefabs"
)

// Scene holds the entities spawned by NewScene.
type Scene struct {
	Camera  ecs.Entity
	Sun     ecs.Entity
	Ambient ecs.Entity
	Light   ecs.Entity
	Sky     ecs.Entity
	Floor   ecs.Entity
	Droplet ecs.Entity
}

// NewScene registers the scene assets and spawns every entity of the
// droplet scene.
func NewScene(w *ecs.World, assets *render.Assets, spec *prefabs.SceneSpec) (*Scene, error) {
	if spec == nil {
		def := prefabs.DefaultSceneSpec()
		spec = &def
	}

	if err := RegisterAssets(assets, spec); err != nil {
		return nil, fmt.Errorf("scene: register assets: %w", err)
	}

	var (
		scene Scene
		err   error
	)
	if scene.Camera, err = NewCamera(w, spec.Camera); err != nil {
		return nil, err
	}
	if scene.Sun, err = NewSun(w, spec.Sun); err != nil {
		return nil, err
	}
	if scene.Ambient, err = NewAmbientLight(w, spec.Ambient); err != nil {
		return nil, err
	}
	if scene.Light, err = NewRotatingLight(w, spec.RotatingLight); err != nil {
		return nil, err
	}
	if scene.Sky, err = NewSky(w); err != nil {
		return nil, err
	}
	if scene.Floor, err = NewFloor(w, spec.Floor); err != nil {
		return nil, err
	}
	if scene.Droplet, err = NewDroplet(w, spec.Droplet); err != nil {
		return nil, err
	}

	return &scene, nil
}
