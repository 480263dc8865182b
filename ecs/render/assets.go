package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Material describes how a mesh is shaded.
type Material struct {
	BaseColor color.NRGBA
	// Texture names a texture registered in the same Assets.
	Texture     string
	Unlit       bool
	DoubleSided bool
	// Specular scales the Blinn highlight; zero disables it.
	Specular  float64
	Shininess float64
}

// Assets owns meshes, materials and textures by name. GPU images are created
// lazily on first draw so headless code never touches ebiten.
type Assets struct {
	meshes    map[string]*Mesh
	materials map[string]*Material
	textures  map[string]*Texture
	images    map[string]*ebiten.Image
}

func NewAssets() *Assets {
	return &Assets{
		meshes:    make(map[string]*Mesh),
		materials: make(map[string]*Material),
		textures:  make(map[string]*Texture),
		images:    make(map[string]*ebiten.Image),
	}
}

// AddMesh stores a mesh by key.
func (a *Assets) AddMesh(key string, m *Mesh) {
	if a == nil || key == "" || m == nil {
		return
	}
	a.meshes[key] = m
}

func (a *Assets) Mesh(key string) *Mesh {
	if a == nil {
		return nil
	}
	return a.meshes[key]
}

// AddMaterial stores a material by key.
func (a *Assets) AddMaterial(key string, m *Material) {
	if a == nil || key == "" || m == nil {
		return
	}
	a.materials[key] = m
}

func (a *Assets) Material(key string) *Material {
	if a == nil {
		return nil
	}
	return a.materials[key]
}

// AddTexture stores a pixel buffer by key and drops any cached image.
func (a *Assets) AddTexture(key string, t *Texture) {
	if a == nil || key == "" || t == nil {
		return
	}
	a.textures[key] = t
	delete(a.images, key)
}

func (a *Assets) Texture(key string) *Texture {
	if a == nil {
		return nil
	}
	return a.textures[key]
}

// Image returns the GPU image for a texture, uploading it on first use.
func (a *Assets) Image(key string) *ebiten.Image {
	if a == nil || key == "" {
		return nil
	}
	if img, ok := a.images[key]; ok {
		return img
	}
	tex := a.textures[key]
	if tex == nil {
		return nil
	}
	img := ebiten.NewImage(tex.Width, tex.Height)
	img.WritePixels(tex.Pix)
	a.images[key] = img
	return img
}
