package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps each DrawTriangles call inside uint16 indices.
const maxBatchVertices = 65532

// Triangle is a screen-space triangle ready for DrawTriangles.
type Triangle struct {
	Verts [3]ebiten.Vertex
	Image *ebiten.Image
	Depth float64
}

// DrawList collects triangles for one draw layer.
type DrawList struct {
	tris []Triangle
}

func (d *DrawList) Len() int {
	return len(d.tris)
}

func (d *DrawList) Reset() {
	d.tris = d.tris[:0]
}

// SortBackToFront orders triangles farthest first.
func (d *DrawList) SortBackToFront() {
	sort.SliceStable(d.tris, func(i, j int) bool {
		return d.tris[i].Depth > d.tris[j].Depth
	})
}

// Flush draws every triangle onto dst in order, batching runs that share a
// source image.
func (d *DrawList) Flush(dst *ebiten.Image, filter ebiten.Filter) {
	if dst == nil {
		return
	}
	var (
		verts   []ebiten.Vertex
		indices []uint16
		current *ebiten.Image
	)
	op := &ebiten.DrawTrianglesOptions{Filter: filter}
	flush := func() {
		if len(verts) > 0 && current != nil {
			dst.DrawTriangles(verts, indices, current, op)
		}
		verts = verts[:0]
		indices = indices[:0]
	}
	for _, tri := range d.tris {
		if tri.Image != current || len(verts)+3 > maxBatchVertices {
			flush()
			current = tri.Image
		}
		base := uint16(len(verts))
		verts = append(verts, tri.Verts[0], tri.Verts[1], tri.Verts[2])
		indices = append(indices, base, base+1, base+2)
	}
	flush()
	d.Reset()
}

// Surface is one mesh instance to rasterize.
type Surface struct {
	Mesh     *Mesh
	Material *Material
	Model    mgl64.Mat4
	// Image is the source texture; SrcW and SrcH scale the mesh UVs. An
	// untextured surface samples the pixel at (SrcX, SrcY).
	Image      *ebiten.Image
	SrcW, SrcH float64
	SrcX, SrcY float64
}

// Submit shades, culls, clips and projects s into the list.
func (d *DrawList) Submit(cam Camera, lights *Lights, s Surface) {
	if s.Mesh == nil || s.Image == nil {
		return
	}
	normalMat := s.Model.Mat3().Inv().Transpose()
	alpha := 1.0
	if s.Material != nil {
		alpha = float64(s.Material.BaseColor.A) / 255
	}
	doubleSided := s.Material != nil && s.Material.DoubleSided

	world := make([]mgl64.Vec3, len(s.Mesh.Vertices))
	normals := make([]mgl64.Vec3, len(s.Mesh.Vertices))
	shaded := make([][4]float64, len(s.Mesh.Vertices))
	for i, v := range s.Mesh.Vertices {
		world[i] = s.Model.Mul4x1(v.Position.Vec4(1)).Vec3()
		n := normalMat.Mul3x1(v.Normal)
		if n.Len() > 0 {
			n = n.Normalize()
		}
		normals[i] = n
		c := lights.Shade(world[i], n, cam.Eye, s.Material)
		shaded[i] = [4]float64{c.X(), c.Y(), c.Z(), alpha}
	}

	idx := s.Mesh.Indices
	for t := 0; t+2 < len(idx); t += 3 {
		i0, i1, i2 := idx[t], idx[t+1], idx[t+2]
		centroid := world[i0].Add(world[i1]).Add(world[i2]).Mul(1.0 / 3)
		if !doubleSided {
			faceN := normals[i0].Add(normals[i1]).Add(normals[i2])
			if faceN.Dot(cam.Eye.Sub(centroid)) < 0 {
				continue
			}
		}
		var tri [3]ClipVertex
		for k, vi := range [3]uint16{i0, i1, i2} {
			mv := s.Mesh.Vertices[vi]
			tri[k] = ClipVertex{Pos: cam.Clip(world[vi]), U: mv.U, V: mv.V, Color: shaded[vi]}
		}
		poly := ClipNear(tri)
		if len(poly) < 3 {
			continue
		}
		depth := cam.Depth(centroid)
		for k := 1; k+1 < len(poly); k++ {
			d.tris = append(d.tris, Triangle{
				Verts: [3]ebiten.Vertex{
					s.vertex(cam, poly[0]),
					s.vertex(cam, poly[k]),
					s.vertex(cam, poly[k+1]),
				},
				Image: s.Image,
				Depth: depth,
			})
		}
	}
}

func (s Surface) vertex(cam Camera, v ClipVertex) ebiten.Vertex {
	x, y := cam.Screen(v.Pos)
	srcX, srcY := s.SrcX, s.SrcY
	if s.SrcW > 0 && s.SrcH > 0 {
		srcX = v.U * s.SrcW
		srcY = v.V * s.SrcH
	}
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   float32(srcX),
		SrcY:   float32(srcY),
		ColorR: float32(clamp01(v.Color[0])),
		ColorG: float32(clamp01(v.Color[1])),
		ColorB: float32(clamp01(v.Color[2])),
		ColorA: float32(clamp01(v.Color[3])),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
