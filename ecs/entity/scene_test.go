package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/milk9111/splash/ecs/render"
	"github.com/milk9111/splash/prefabs"
	"github.com/stretchr/testify/require"
)

func TestNewSceneSpawnsEveryEntity(t *testing.T) {
	spec := prefabs.DefaultSceneSpec()
	w := ecs.NewWorld()
	assets := render.NewAssets()

	scene, err := NewScene(w, assets, &spec)
	require.NoError(t, err)
	require.Len(t, ecs.Entities(w), 7)

	cam, ok := ecs.Get(w, scene.Camera, component.OrbitCameraComponent.Kind())
	require.True(t, ok)
	require.True(t, cam.Eye().ApproxEqualThreshold(mgl64.Vec3{0, 1.5, 5}, 1e-9))
	require.InDelta(t, mgl64.DegToRad(45), cam.FOV, 1e-12)
	require.True(t, ecs.Has(w, scene.Camera, component.InputComponent.Kind()))

	dl, ok := ecs.Get(w, scene.Sun, component.DirectionalLightComponent.Kind())
	require.True(t, ok)
	require.Equal(t, 10000.0, dl.Illuminance)
	require.True(t, dl.Shadows)

	amb, ok := ecs.Get(w, scene.Ambient, component.AmbientLightComponent.Kind())
	require.True(t, ok)
	require.Equal(t, 500.0, amb.Brightness)

	require.True(t, ecs.Has(w, scene.Light, component.RotateLightComponent.Kind()))
	require.True(t, ecs.Has(w, scene.Sky, component.NotShadowCasterComponent.Kind()))

	floorCol, ok := ecs.Get(w, scene.Floor, component.ColliderComponent.Kind())
	require.True(t, ok)
	require.Equal(t, component.ColliderCuboid, floorCol.Shape)
	require.Equal(t, mgl64.Vec3{10, 0.01, 10}, floorCol.HalfExtents)
	floorBody, _ := ecs.Get(w, scene.Floor, component.RigidBodyComponent.Kind())
	require.Equal(t, component.BodyFixed, floorBody.Type)

	require.NotNil(t, assets.Mesh(AssetSky))
	require.NotNil(t, assets.Mesh(AssetFloor))
	require.NotNil(t, assets.Mesh(AssetDroplet))
	require.NotNil(t, assets.Mesh(AssetParticle))
	require.Equal(t, AssetCheckerboard, assets.Material(AssetFloor).Texture)
	require.True(t, assets.Material(AssetSky).Unlit)
	require.Len(t, assets.Texture(AssetCheckerboard).Pix, 512*512*4)
}

func TestNewDropletMatchesSpec(t *testing.T) {
	spec := prefabs.DefaultSceneSpec()
	w := ecs.NewWorld()
	e, err := NewDroplet(w, spec.Droplet)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	require.Equal(t, mgl64.Vec3{0, 5, 0}, tr.Position)
	require.Equal(t, mgl64.Vec3{1, 1, 1}, tr.Scale)

	d, _ := ecs.Get(w, e, component.DropletComponent.Kind())
	require.Equal(t, component.DropletFalling, d.State)
	require.False(t, d.HasSplashed())
	require.Equal(t, 1.0, d.SplashBelow)
	require.Equal(t, mgl64.Vec3{2, 0.1, 2}, d.SplashScale)

	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	require.Equal(t, component.ColliderBall, col.Shape)
	require.Equal(t, 0.5, col.Radius)
	require.Equal(t, 0.05, col.Restitution)

	damp, _ := ecs.Get(w, e, component.DampingComponent.Kind())
	require.Equal(t, component.Damping{Linear: 0.5, Angular: 0.5}, *damp)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	require.Equal(t, component.Velocity{}, *vel)
	require.True(t, ecs.Has(w, e, component.CollisionEventsComponent.Kind()))
}

func TestSunPointsDownward(t *testing.T) {
	spec := prefabs.DefaultSceneSpec()
	w := ecs.NewWorld()
	e, err := NewSun(w, spec.Sun)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	fwd := tr.Forward()
	require.InDelta(t, 1, fwd.Len(), 1e-9)
	require.Less(t, fwd.Y(), 0.0)
}

func TestRandomSplashVelocityRanges(t *testing.T) {
	spec := prefabs.DefaultSceneSpec().Particles
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		v := RandomSplashVelocity(rng, spec)
		require.GreaterOrEqual(t, v.X(), -2.0)
		require.Less(t, v.X(), 2.0)
		require.GreaterOrEqual(t, v.Y(), 2.0)
		require.Less(t, v.Y(), 5.0)
		require.GreaterOrEqual(t, v.Z(), -2.0)
		require.Less(t, v.Z(), 2.0)
		require.False(t, math.IsNaN(v.Len()))
	}
}

func TestNewSplashParticle(t *testing.T) {
	spec := prefabs.DefaultSceneSpec().Particles
	w := ecs.NewWorld()
	assets := render.NewAssets()

	e, err := NewSplashParticle(w, assets, mgl64.Vec3{1, 0.5, -1}, mgl64.Vec3{0, 3, 0}, spec)
	require.NoError(t, err)
	require.True(t, ecs.Has(w, e, component.SplashParticleComponent.Kind()))
	require.NotNil(t, assets.Mesh(AssetParticle))

	layer, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	require.Equal(t, component.LayerParticle, layer.Category)
	require.Equal(t, component.LayerWorld, layer.Mask)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	require.Equal(t, mgl64.Vec3{0, 3, 0}, vel.Linear)
}
