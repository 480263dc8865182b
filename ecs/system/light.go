package system

import (
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/prefabs"
)

// LightOrbitSystem moves RotateLight entities along their orbit each frame.
type LightOrbitSystem struct {
	scripts map[string]*lightScript
}

type lightScript struct {
	compiled *tengo.Compiled
	failed   bool
}

func NewLightOrbitSystem() *LightOrbitSystem {
	return &LightOrbitSystem{scripts: make(map[string]*lightScript)}
}

func (s *LightOrbitSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	t := w.Clock().Elapsed

	ecs.ForEach(w, component.RotateLightComponent.Kind(), func(e ecs.Entity, light *component.RotateLight) {
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		transform.Position = s.position(*light, t)
	})
}

func (s *LightOrbitSystem) position(light component.RotateLight, t float64) mgl64.Vec3 {
	name := strings.TrimSpace(light.Script)
	if name == "" {
		return light.OrbitPosition(t)
	}

	script := s.script(name)
	if script.failed {
		return light.OrbitPosition(t)
	}

	pos, err := script.eval(t)
	if err != nil {
		log.Printf("light: script %s: %v, using built-in orbit", name, err)
		script.failed = true
		return light.OrbitPosition(t)
	}
	return pos
}

func (s *LightOrbitSystem) script(name string) *lightScript {
	if s.scripts == nil {
		s.scripts = make(map[string]*lightScript)
	}
	if ls, ok := s.scripts[name]; ok {
		return ls
	}

	ls := &lightScript{}
	compiled, err := compileLightScript(name)
	if err != nil {
		log.Printf("light: script %s: %v, using built-in orbit", name, err)
		ls.failed = true
	}
	ls.compiled = compiled
	s.scripts[name] = ls
	return ls
}

func compileLightScript(name string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	return script.Compile()
}

func (ls *lightScript) eval(t float64) (mgl64.Vec3, error) {
	if err := ls.compiled.Set("t", t); err != nil {
		return mgl64.Vec3{}, err
	}
	if err := ls.compiled.Run(); err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{
		ls.compiled.Get("x").Float(),
		ls.compiled.Get("y").Float(),
		ls.compiled.Get("z").Float(),
	}, nil
}
