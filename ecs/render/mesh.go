package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a mesh vertex in model space. U and V are normalized texture
// coordinates.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	U, V     float64
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// NewSphere builds a UV sphere centered at the origin.
func NewSphere(radius float64, sectors, stacks int) *Mesh {
	if sectors < 3 {
		sectors = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	m := &Mesh{}
	for i := 0; i <= stacks; i++ {
		phi := math.Pi/2 - float64(i)*math.Pi/float64(stacks)
		cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
		for j := 0; j <= sectors; j++ {
			theta := float64(j) * 2 * math.Pi / float64(sectors)
			n := mgl64.Vec3{cosPhi * math.Cos(theta), sinPhi, cosPhi * math.Sin(theta)}
			m.Vertices = append(m.Vertices, Vertex{
				Position: n.Mul(radius),
				Normal:   n,
				U:        float64(j) / float64(sectors),
				V:        float64(i) / float64(stacks),
			})
		}
	}
	row := sectors + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			k1 := uint16(i*row + j)
			k2 := uint16((i+1)*row + j)
			if i != 0 {
				m.Indices = append(m.Indices, k1, k1+1, k2)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2+1, k2)
			}
		}
	}
	return m
}

// NewPlane builds a size*size plane on y=0 facing +Y, split into
// divisions*divisions quads so near-plane clipping stays local.
func NewPlane(size float64, divisions int) *Mesh {
	if divisions < 1 {
		divisions = 1
	}
	m := &Mesh{}
	half := size / 2
	step := size / float64(divisions)
	for i := 0; i <= divisions; i++ {
		for j := 0; j <= divisions; j++ {
			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl64.Vec3{-half + float64(j)*step, 0, -half + float64(i)*step},
				Normal:   mgl64.Vec3{0, 1, 0},
				U:        float64(j) / float64(divisions),
				V:        float64(i) / float64(divisions),
			})
		}
	}
	row := divisions + 1
	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			a := uint16(i*row + j)
			b := a + 1
			c := uint16((i+1)*row + j)
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}
	return m
}
