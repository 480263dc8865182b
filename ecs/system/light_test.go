package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/splash/ecs"
	"github.com/milk9111/splash/ecs/component"
	"github.com/stretchr/testify/require"
)

func TestLightOrbitFollowsCircle(t *testing.T) {
	w, scene, _ := newTestScene(t)
	sys := NewLightOrbitSystem()

	for _, ts := range []float64{0, 0.5, math.Pi / 2, 3, 10.25} {
		w.Clock().Set(ts)
		sys.Update(w)

		tr, ok := ecs.Get(w, scene.Light, component.TransformComponent.Kind())
		require.True(t, ok)
		want := mgl64.Vec3{4 * math.Cos(ts), 8, 4 * math.Sin(ts)}
		require.True(t, tr.Position.ApproxEqualThreshold(want, 1e-9), "t=%v got %v want %v", ts, tr.Position, want)
		require.InDelta(t, 4.0, math.Hypot(tr.Position.X(), tr.Position.Z()), 1e-9)
	}
}

func TestLightOrbitScriptMatchesBuiltIn(t *testing.T) {
	w, scene, _ := newTestScene(t)
	rotate, _ := ecs.Get(w, scene.Light, component.RotateLightComponent.Kind())
	rotate.Script = "orbit.tengo"

	sys := NewLightOrbitSystem()
	for _, ts := range []float64{0, 1, 2.5, 7} {
		w.Clock().Set(ts)
		sys.Update(w)

		tr, _ := ecs.Get(w, scene.Light, component.TransformComponent.Kind())
		want := component.OrbitPosition(4, 8, ts)
		require.True(t, tr.Position.ApproxEqualThreshold(want, 1e-9), "t=%v got %v want %v", ts, tr.Position, want)
	}
	require.False(t, sys.scripts["orbit.tengo"].failed)
}

func TestLightOrbitMissingScriptFallsBack(t *testing.T) {
	w, scene, _ := newTestScene(t)
	rotate, _ := ecs.Get(w, scene.Light, component.RotateLightComponent.Kind())
	rotate.Script = "does_not_exist.tengo"

	sys := NewLightOrbitSystem()
	w.Clock().Set(1)
	sys.Update(w)

	tr, _ := ecs.Get(w, scene.Light, component.TransformComponent.Kind())
	require.True(t, tr.Position.ApproxEqualThreshold(component.OrbitPosition(4, 8, 1), 1e-9))
	require.True(t, sys.scripts["does_not_exist.tengo"].failed)
}
