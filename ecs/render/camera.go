package render

import "github.com/go-gl/mathgl/mgl64"

// Camera projects world positions to screen pixels with an OpenGL style
// perspective.
type Camera struct {
	Eye      mgl64.Vec3
	View     mgl64.Mat4
	Proj     mgl64.Mat4
	ViewProj mgl64.Mat4
	Width    float64
	Height   float64
}

func NewCamera(eye, focus mgl64.Vec3, fovY, near, far, width, height float64) Camera {
	if height <= 0 {
		height = 1
	}
	view := mgl64.LookAtV(eye, focus, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(fovY, width/height, near, far)
	return Camera{
		Eye:      eye,
		View:     view,
		Proj:     proj,
		ViewProj: proj.Mul4(view),
		Width:    width,
		Height:   height,
	}
}

// Clip transforms a world position into clip space.
func (c Camera) Clip(p mgl64.Vec3) mgl64.Vec4 {
	return c.ViewProj.Mul4x1(p.Vec4(1))
}

// Screen maps a clip-space position in front of the near plane to pixels.
func (c Camera) Screen(clip mgl64.Vec4) (x, y float64) {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX*0.5 + 0.5) * c.Width, (0.5 - ndcY*0.5) * c.Height
}

// Depth returns the view-space distance along the view direction.
func (c Camera) Depth(p mgl64.Vec3) float64 {
	return -c.View.Mul4x1(p.Vec4(1)).Z()
}
