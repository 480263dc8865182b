package render

import "github.com/go-gl/mathgl/mgl64"

// ClipVertex carries the attributes interpolated across a clipped triangle.
type ClipVertex struct {
	Pos   mgl64.Vec4
	U, V  float64
	Color [4]float64
}

func lerpClip(a, b ClipVertex, t float64) ClipVertex {
	out := ClipVertex{
		Pos: a.Pos.Add(b.Pos.Sub(a.Pos).Mul(t)),
		U:   a.U + (b.U-a.U)*t,
		V:   a.V + (b.V-a.V)*t,
	}
	for i := range out.Color {
		out.Color[i] = a.Color[i] + (b.Color[i]-a.Color[i])*t
	}
	return out
}

// nearDistance is positive in front of the near plane (z >= -w).
func nearDistance(v ClipVertex) float64 {
	return v.Pos.Z() + v.Pos.W()
}

// ClipNear clips a triangle against the near plane and returns a convex
// polygon of 0, 3 or 4 vertices.
func ClipNear(tri [3]ClipVertex) []ClipVertex {
	out := make([]ClipVertex, 0, 4)
	for i := 0; i < 3; i++ {
		cur := tri[i]
		next := tri[(i+1)%3]
		dc, dn := nearDistance(cur), nearDistance(next)
		if dc >= 0 {
			out = append(out, cur)
		}
		if (dc >= 0) != (dn >= 0) {
			out = append(out, lerpClip(cur, next, dc/(dc-dn)))
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
