package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Scene light units are scaled into [0,1] shading terms.
	ambientScale     = 1.0 / 2000
	illuminanceScale = 1.0 / 12000
)

type sun struct {
	dir   mgl64.Vec3 // toward the light
	color mgl64.Vec3
}

type point struct {
	pos   mgl64.Vec3
	color mgl64.Vec3
	rng   float64
}

// Lights collects the scene lights for per-vertex shading.
type Lights struct {
	ambient mgl64.Vec3
	suns    []sun
	points  []point
}

func colorVec(c color.NRGBA) mgl64.Vec3 {
	return mgl64.Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// AddAmbient adds a uniform fill term.
func (l *Lights) AddAmbient(c color.NRGBA, brightness float64) {
	l.ambient = l.ambient.Add(colorVec(c).Mul(math.Min(brightness*ambientScale, 1)))
}

// AddDirectional adds a light shining along forward.
func (l *Lights) AddDirectional(forward mgl64.Vec3, c color.NRGBA, illuminance float64) {
	if forward.Len() == 0 {
		return
	}
	l.suns = append(l.suns, sun{
		dir:   forward.Normalize().Mul(-1),
		color: colorVec(c).Mul(math.Min(illuminance*illuminanceScale, 1)),
	})
}

// AddPoint adds a light at pos that fades out at rng meters.
func (l *Lights) AddPoint(pos mgl64.Vec3, c color.NRGBA, intensity, rng float64) {
	if rng <= 0 {
		return
	}
	l.points = append(l.points, point{pos: pos, color: colorVec(c).Mul(intensity), rng: rng})
}

// Shade returns the lit RGB factor for a surface point.
func (l *Lights) Shade(pos, normal, eye mgl64.Vec3, mat *Material) mgl64.Vec3 {
	base := mgl64.Vec3{1, 1, 1}
	if mat != nil {
		base = colorVec(mat.BaseColor)
		if mat.Unlit {
			return base
		}
	}
	if normal.Len() == 0 {
		return mgl64.Vec3{}
	}
	n := normal.Normalize()
	view := eye.Sub(pos)
	if view.Len() > 0 {
		view = view.Normalize()
	}

	diffuse := l.ambient
	var spec mgl64.Vec3
	addLight := func(toLight, c mgl64.Vec3) {
		ndl := n.Dot(toLight)
		if ndl <= 0 {
			return
		}
		diffuse = diffuse.Add(c.Mul(ndl))
		if mat != nil && mat.Specular > 0 {
			h := toLight.Add(view)
			if h.Len() == 0 {
				return
			}
			shin := mat.Shininess
			if shin <= 0 {
				shin = 32
			}
			s := math.Pow(math.Max(n.Dot(h.Normalize()), 0), shin) * mat.Specular
			spec = spec.Add(c.Mul(s))
		}
	}
	for _, s := range l.suns {
		addLight(s.dir, s.color)
	}
	for _, p := range l.points {
		d := p.pos.Sub(pos)
		dist := d.Len()
		if dist == 0 || dist >= p.rng {
			continue
		}
		falloff := 1 - dist/p.rng
		addLight(d.Mul(1/dist), p.color.Mul(falloff*falloff))
	}

	out := mgl64.Vec3{base.X() * diffuse.X(), base.Y() * diffuse.Y(), base.Z() * diffuse.Z()}.Add(spec)
	return mgl64.Vec3{math.Min(out.X(), 1), math.Min(out.Y(), 1), math.Min(out.Z(), 1)}
}
