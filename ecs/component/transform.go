package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in world space. Y is up.
type Transform struct {
	Position mgl64.Vec3
	Scale    mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform returns a transform at pos with unit scale and no rotation.
func NewTransform(pos mgl64.Vec3) Transform {
	return Transform{
		Position: pos,
		Scale:    mgl64.Vec3{1, 1, 1},
		Rotation: mgl64.QuatIdent(),
	}
}

// Matrix returns the model matrix (translate * rotate * scale).
func (t Transform) Matrix() mgl64.Mat4 {
	scale := t.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Forward returns the rotated -Z axis.
func (t Transform) Forward() mgl64.Vec3 {
	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	return rot.Rotate(mgl64.Vec3{0, 0, -1})
}

var TransformComponent = NewComponent[Transform]()
