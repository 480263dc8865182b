package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/stretchr/testify/require"
)

func TestOrbitCameraStartsAtEye(t *testing.T) {
	cam := component.NewOrbitCameraAt(mgl64.Vec3{0, 1.5, 5}, mgl64.Vec3{})
	require.True(t, cam.Eye().ApproxEqualThreshold(mgl64.Vec3{0, 1.5, 5}, 1e-9))

	w, scene, _ := newTestScene(t)
	NewOrbitCameraSystem().Update(w)
	tr, _ := ecs.Get(w, scene.Camera, component.TransformComponent.Kind())
	require.True(t, tr.Position.ApproxEqualThreshold(mgl64.Vec3{0, 1.5, 5}, 1e-9))
}

func TestOrbitInputClampsPitchAndRadius(t *testing.T) {
	cam := component.NewOrbitCameraAt(mgl64.Vec3{0, 1.5, 5}, mgl64.Vec3{})

	ApplyOrbitInput(&cam, component.Input{OrbitDY: 1e6})
	require.Equal(t, cam.MaxPitch, cam.Pitch)

	ApplyOrbitInput(&cam, component.Input{OrbitDY: -1e6})
	require.Equal(t, cam.MinPitch, cam.Pitch)
	require.Greater(t, cam.Eye().Y(), 0.0)

	for i := 0; i < 100; i++ {
		ApplyOrbitInput(&cam, component.Input{Zoom: 1})
	}
	require.Equal(t, cam.MinRadius, cam.Radius)

	for i := 0; i < 100; i++ {
		ApplyOrbitInput(&cam, component.Input{Zoom: -1})
	}
	require.Equal(t, cam.MaxRadius, cam.Radius)
}

func TestOrbitInputPanMovesFocusSideways(t *testing.T) {
	cam := component.NewOrbitCameraAt(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{})
	cam.Pitch = 0.5
	radius := cam.Radius

	ApplyOrbitInput(&cam, component.Input{PanDX: 100})
	require.Less(t, cam.Focus.X(), 0.0)
	require.InDelta(t, 0.0, cam.Focus.Y(), 1e-12)
	require.InDelta(t, 0.0, cam.Focus.Z(), 1e-12)
	require.Equal(t, radius, cam.Radius)

	yaw := cam.Yaw
	ApplyOrbitInput(&cam, component.Input{OrbitDX: 10})
	require.InDelta(t, yaw-10*cam.OrbitSensitivity, cam.Yaw, 1e-12)
	require.False(t, math.IsNaN(cam.Eye().X()))
}
