package system

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/ecs/render"
)

const renderLayers = component.LayerObjects + 1

// RenderSystem rasterizes every Mesh entity through the orbit camera. Layers
// draw in order and each layer is sorted back to front.
type RenderSystem struct {
	assets    *render.Assets
	clear     color.NRGBA
	camEntity ecs.Entity

	white *ebiten.Image
	lists [renderLayers]render.DrawList
}

func NewRenderSystem(assets *render.Assets, clear color.NRGBA) *RenderSystem {
	return &RenderSystem{assets: assets, clear: clear}
}

// Update is a no-op; rendering happens in Draw.
func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(r.clear)

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.OrbitCameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	bounds := screen.Bounds()
	cam, ok := sceneCamera(w, r.camEntity, float64(bounds.Dx()), float64(bounds.Dy()))
	if !ok {
		return
	}
	lights := sceneLights(w)

	for _, e := range w.Query(component.MeshComponent.Kind(), component.TransformComponent.Kind()) {
		m, _ := ecs.Get(w, e, component.MeshComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if m == nil || t == nil {
			continue
		}
		surface, ok := r.surface(*m, *t)
		if !ok {
			continue
		}
		layer := m.Layer
		if layer < 0 || layer >= renderLayers {
			layer = component.LayerObjects
		}
		r.lists[layer].Submit(cam, lights, surface)
	}

	for i := range r.lists {
		r.lists[i].SortBackToFront()
		r.lists[i].Flush(screen, ebiten.FilterLinear)
	}
}

func (r *RenderSystem) surface(m component.Mesh, t component.Transform) (render.Surface, bool) {
	mesh := r.assets.Mesh(m.Mesh)
	if mesh == nil {
		return render.Surface{}, false
	}
	mat := r.assets.Material(m.Material)

	s := render.Surface{Mesh: mesh, Material: mat, Model: t.Matrix()}
	if mat != nil && mat.Texture != "" {
		if img := r.assets.Image(mat.Texture); img != nil {
			b := img.Bounds()
			s.Image = img
			s.SrcW = float64(b.Dx())
			s.SrcH = float64(b.Dy())
			return s, true
		}
	}

	s.Image = r.whiteImage()
	s.SrcX, s.SrcY = 1.5, 1.5
	return s, true
}

// whiteImage is a 1x1 white sub image of a 3x3 image so linear filtering
// never reads past its edge.
func (r *RenderSystem) whiteImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

func sceneCamera(w *ecs.World, camEntity ecs.Entity, width, height float64) (render.Camera, bool) {
	orbit, ok := ecs.Get(w, camEntity, component.OrbitCameraComponent.Kind())
	if !ok {
		return render.Camera{}, false
	}
	eye := orbit.Eye()
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		eye = t.Position
	}
	return render.NewCamera(eye, orbit.Focus, orbit.FOV, orbit.Near, orbit.Far, width, height), true
}

func sceneLights(w *ecs.World) *render.Lights {
	lights := &render.Lights{}
	ecs.ForEach(w, component.AmbientLightComponent.Kind(), func(e ecs.Entity, a *component.AmbientLight) {
		lights.AddAmbient(a.Color, a.Brightness)
	})
	ecs.ForEach2(w, component.DirectionalLightComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, d *component.DirectionalLight, t *component.Transform) {
		lights.AddDirectional(t.Forward(), d.Color, d.Illuminance)
	})
	ecs.ForEach2(w, component.PointLightComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.PointLight, t *component.Transform) {
		lights.AddPoint(t.Position, p.Color, p.Intensity, p.Range)
	})
	return lights
}
