package entity

import (
	"image/color"

	"github.com/milk9111/splash/ecs/render"
	"github.com/milk9111/splash/prefabs"
)

// Asset keys registered by RegisterAssets.
const (
	AssetSky          = "sky"
	AssetFloor        = "floor"
	AssetDroplet      = "droplet"
	AssetParticle     = "particle"
	AssetCheckerboard = "checkerboard"
)

const (
	sphereSectors = 32
	sphereStacks  = 16
)

// RegisterAssets builds every mesh, material and texture the scene draws.
func RegisterAssets(assets *render.Assets, spec *prefabs.SceneSpec) error {
	if assets == nil || spec == nil {
		return nil
	}

	skyColor, err := prefabs.ParseHexColor(spec.Sky.Color)
	if err != nil {
		return err
	}

	assets.AddMesh(AssetSky, render.NewSphere(spec.Sky.Radius, sphereSectors, sphereStacks))
	assets.AddMaterial(AssetSky, &render.Material{
		BaseColor:   skyColor,
		Unlit:       true,
		DoubleSided: true,
	})

	assets.AddTexture(AssetCheckerboard, render.NewCheckerboardTexture(spec.Floor.TextureSize, spec.Floor.TileSize))
	assets.AddMesh(AssetFloor, render.NewPlane(spec.Floor.Size, spec.Floor.Divisions))
	assets.AddMaterial(AssetFloor, &render.Material{
		BaseColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Texture:   AssetCheckerboard,
		Specular:  0.1,
		Shininess: 8,
	})

	assets.AddMesh(AssetDroplet, render.NewSphere(spec.Droplet.Radius, sphereSectors, sphereStacks))
	assets.AddMaterial(AssetDroplet, glossyWhite())

	registerParticleAssets(assets, spec.Particles)
	return nil
}

func registerParticleAssets(assets *render.Assets, spec prefabs.ParticleSpec) {
	if assets == nil || assets.Mesh(AssetParticle) != nil {
		return
	}
	assets.AddMesh(AssetParticle, render.NewSphere(spec.Radius, 12, 6))
	assets.AddMaterial(AssetParticle, glossyWhite())
}

// glossyWhite approximates the water material: white, very smooth, with a
// tight highlight.
func glossyWhite() *render.Material {
	return &render.Material{
		BaseColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Specular:  0.9,
		Shininess: 96,
	}
}
