package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSceneSpecEmbedded(t *testing.T) {
	spec, err := LoadSceneSpec()
	require.NoError(t, err)

	assert.Equal(t, Vec3Spec{0, 5, 0}, spec.Droplet.Start)
	assert.Equal(t, 0.5, spec.Droplet.Radius)
	assert.Equal(t, 1.0, spec.Droplet.SplashBelow)
	assert.Equal(t, Vec3Spec{2, 0.1, 2}, spec.Droplet.SplashScale)
	assert.Equal(t, 20, spec.Particles.Count)
	assert.Equal(t, Vec3Spec{-2, 2, -2}, spec.Particles.VelocityMin)
	assert.Equal(t, Vec3Spec{2, 5, 2}, spec.Particles.VelocityMax)
	assert.Equal(t, 512, spec.Floor.TextureSize)
	assert.Equal(t, 64, spec.Floor.TileSize)
	assert.Equal(t, 4.0, spec.RotatingLight.Radius)
	assert.Equal(t, 8.0, spec.RotatingLight.Height)
	assert.Equal(t, "R", spec.ResetKey)
}

func TestParseSceneSpecFillsDefaults(t *testing.T) {
	spec, err := ParseSceneSpec([]byte("droplet:\n  start: [1, 7, 0]\nparticles:\n  count: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, Vec3Spec{1, 7, 0}, spec.Droplet.Start)
	assert.Equal(t, 5, spec.Particles.Count)
	assert.Equal(t, 0.1, spec.Particles.Radius)
	assert.Equal(t, DefaultSceneSpec().Particles.VelocityMax, spec.Particles.VelocityMax)
	assert.Equal(t, 0.05, spec.Droplet.Restitution)
	assert.Equal(t, 1.0/60, spec.Physics.Timestep)
}

func TestParseSceneSpecRejectsBadYAML(t *testing.T) {
	_, err := ParseSceneSpec([]byte("droplet: [unclosed"))
	require.Error(t, err)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.WriteFile(filepath.Join(dir, SceneFile), []byte("particles:\n  count: 3\n"), 0o644))

	spec, err := LoadSceneSpec()
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Particles.Count)

	_, ok := ModTime(SceneFile)
	assert.True(t, ok)
}

func TestKey(t *testing.T) {
	k, err := Key("R")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyR, k)

	k, err = Key("Escape")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyEscape, k)

	_, err = Key("NotAKey")
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#80CCE6")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.R)
	assert.Equal(t, uint8(0xCC), c.G)
	assert.Equal(t, uint8(0xE6), c.B)
	assert.Equal(t, uint8(0xFF), c.A)

	_, err = ParseHexColor("#123")
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"orbit.tengo", "scripts/orbit.tengo", "prefabs/scripts/orbit.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "math.cos(t)")
	}
}

func TestWatcherReportsSceneWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SceneFile), []byte("name: x\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, SceneFile, name)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}
