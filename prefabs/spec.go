package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

const SceneFile = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3Spec decodes a yaml [x, y, z] sequence.
type Vec3Spec [3]float64

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

func (v Vec3Spec) IsZero() bool {
	return v == Vec3Spec{}
}

type PhysicsSpec struct {
	Timestep   float64 `yaml:"timestep"`
	Gravity    float64 `yaml:"gravity"`
	Iterations int     `yaml:"iterations"`
}

type CameraSpec struct {
	Eye        Vec3Spec `yaml:"eye"`
	Focus      Vec3Spec `yaml:"focus"`
	FOVDegrees float64  `yaml:"fov_degrees"`
}

type SunSpec struct {
	Euler       Vec3Spec `yaml:"euler"`
	Illuminance float64  `yaml:"illuminance"`
	Shadows     bool     `yaml:"shadows"`
}

type AmbientSpec struct {
	Color      string  `yaml:"color"`
	Brightness float64 `yaml:"brightness"`
}

type RotatingLightSpec struct {
	Radius    float64 `yaml:"radius"`
	Height    float64 `yaml:"height"`
	Intensity float64 `yaml:"intensity"`
	Range     float64 `yaml:"range"`
	Script    string  `yaml:"script"`
}

type FloorSpec struct {
	Size        float64  `yaml:"size"`
	Divisions   int      `yaml:"divisions"`
	HalfExtents Vec3Spec `yaml:"half_extents"`
	TextureSize int      `yaml:"texture_size"`
	TileSize    int      `yaml:"tile_size"`
}

type SkySpec struct {
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

type DropletSpec struct {
	Start          Vec3Spec `yaml:"start"`
	Radius         float64  `yaml:"radius"`
	Restitution    float64  `yaml:"restitution"`
	LinearDamping  float64  `yaml:"linear_damping"`
	AngularDamping float64  `yaml:"angular_damping"`
	SplashBelow    float64  `yaml:"splash_below"`
	SplashScale    Vec3Spec `yaml:"splash_scale"`
	Wobble         float64  `yaml:"wobble"`
}

type ParticleSpec struct {
	Count       int      `yaml:"count"`
	Radius      float64  `yaml:"radius"`
	VelocityMin Vec3Spec `yaml:"velocity_min"`
	VelocityMax Vec3Spec `yaml:"velocity_max"`
}

// SceneSpec holds every tunable of the droplet scene.
type SceneSpec struct {
	Name          string            `yaml:"name"`
	ClearColor    string            `yaml:"clear_color"`
	ResetKey      string            `yaml:"reset_key"`
	PauseKey      string            `yaml:"pause_key"`
	Physics       PhysicsSpec       `yaml:"physics"`
	Camera        CameraSpec        `yaml:"camera"`
	Sun           SunSpec           `yaml:"sun"`
	Ambient       AmbientSpec       `yaml:"ambient"`
	RotatingLight RotatingLightSpec `yaml:"rotating_light"`
	Floor         FloorSpec         `yaml:"floor"`
	Sky           SkySpec           `yaml:"sky"`
	Droplet       DropletSpec       `yaml:"droplet"`
	Particles     ParticleSpec      `yaml:"particles"`
}

// DefaultSceneSpec returns the stock scene.
func DefaultSceneSpec() SceneSpec {
	return SceneSpec{
		Name:       "droplet_scene",
		ClearColor: "#80CCE6",
		ResetKey:   "R",
		PauseKey:   "Escape",
		Physics:    PhysicsSpec{Timestep: 1.0 / 60, Gravity: -9.81, Iterations: 20},
		Camera:     CameraSpec{Eye: Vec3Spec{0, 1.5, 5}, FOVDegrees: 45},
		Sun:        SunSpec{Euler: Vec3Spec{-1.0, -0.5, 0}, Illuminance: 10000, Shadows: true},
		Ambient:    AmbientSpec{Color: "#FFFFFF", Brightness: 500},
		RotatingLight: RotatingLightSpec{
			Radius: 4, Height: 8, Intensity: 0.6, Range: 20,
		},
		Floor: FloorSpec{
			Size: 20, Divisions: 20, HalfExtents: Vec3Spec{10, 0.01, 10},
			TextureSize: 512, TileSize: 64,
		},
		Sky: SkySpec{Radius: 50, Color: "#80CCE6"},
		Droplet: DropletSpec{
			Start: Vec3Spec{0, 5, 0}, Radius: 0.5, Restitution: 0.05,
			LinearDamping: 0.5, AngularDamping: 0.5, SplashBelow: 1.0,
			SplashScale: Vec3Spec{2, 0.1, 2}, Wobble: 0.02,
		},
		Particles: ParticleSpec{
			Count: 20, Radius: 0.1,
			VelocityMin: Vec3Spec{-2, 2, -2},
			VelocityMax: Vec3Spec{2, 5, 2},
		},
	}
}

// LoadSceneSpec reads scene.yaml and fills unset fields from the defaults.
func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults(DefaultSceneSpec())
	return &spec, nil
}

// ParseSceneSpec decodes yaml bytes and fills unset fields from the defaults.
func ParseSceneSpec(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	spec.applyDefaults(DefaultSceneSpec())
	return &spec, nil
}

func (s *SceneSpec) applyDefaults(d SceneSpec) {
	setString(&s.Name, d.Name)
	setString(&s.ClearColor, d.ClearColor)
	setString(&s.ResetKey, d.ResetKey)
	setString(&s.PauseKey, d.PauseKey)

	setFloat(&s.Physics.Timestep, d.Physics.Timestep)
	setFloat(&s.Physics.Gravity, d.Physics.Gravity)
	setInt(&s.Physics.Iterations, d.Physics.Iterations)

	// a zero focus is the origin, so only eye needs a default
	setVec(&s.Camera.Eye, d.Camera.Eye)
	setFloat(&s.Camera.FOVDegrees, d.Camera.FOVDegrees)

	setVec(&s.Sun.Euler, d.Sun.Euler)
	setFloat(&s.Sun.Illuminance, d.Sun.Illuminance)

	setString(&s.Ambient.Color, d.Ambient.Color)
	setFloat(&s.Ambient.Brightness, d.Ambient.Brightness)

	setFloat(&s.RotatingLight.Radius, d.RotatingLight.Radius)
	setFloat(&s.RotatingLight.Height, d.RotatingLight.Height)
	setFloat(&s.RotatingLight.Intensity, d.RotatingLight.Intensity)
	setFloat(&s.RotatingLight.Range, d.RotatingLight.Range)

	setFloat(&s.Floor.Size, d.Floor.Size)
	setInt(&s.Floor.Divisions, d.Floor.Divisions)
	setVec(&s.Floor.HalfExtents, d.Floor.HalfExtents)
	setInt(&s.Floor.TextureSize, d.Floor.TextureSize)
	setInt(&s.Floor.TileSize, d.Floor.TileSize)

	setFloat(&s.Sky.Radius, d.Sky.Radius)
	setString(&s.Sky.Color, d.Sky.Color)

	setVec(&s.Droplet.Start, d.Droplet.Start)
	setFloat(&s.Droplet.Radius, d.Droplet.Radius)
	setFloat(&s.Droplet.Restitution, d.Droplet.Restitution)
	setFloat(&s.Droplet.LinearDamping, d.Droplet.LinearDamping)
	setFloat(&s.Droplet.AngularDamping, d.Droplet.AngularDamping)
	setFloat(&s.Droplet.SplashBelow, d.Droplet.SplashBelow)
	setVec(&s.Droplet.SplashScale, d.Droplet.SplashScale)
	setFloat(&s.Droplet.Wobble, d.Droplet.Wobble)

	setInt(&s.Particles.Count, d.Particles.Count)
	setFloat(&s.Particles.Radius, d.Particles.Radius)
	if s.Particles.VelocityMin.IsZero() && s.Particles.VelocityMax.IsZero() {
		s.Particles.VelocityMin = d.Particles.VelocityMin
		s.Particles.VelocityMax = d.Particles.VelocityMax
	}
}

func setString(dst *string, def string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = def
	}
}

func setFloat(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func setVec(dst *Vec3Spec, def Vec3Spec) {
	if dst.IsZero() {
		*dst = def
	}
}

// Key parses an ebiten key name such as "R" or "Escape".
func Key(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("prefabs: parse key %q: %w", name, err)
	}
	return k, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("prefabs: invalid color %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("prefabs: invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
