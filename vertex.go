package wiregraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a point of the graph. Its identity is its index in the
// slice it was loaded into.
type Vertex struct {
	X float64
	Y float64
	Z float64
}

func NewVertex(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

func (v Vertex) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func VertexFromVec3(v mgl64.Vec3) Vertex {
	return Vertex{X: v[0], Y: v[1], Z: v[2]}
}

// Edge joins two vertices by index. It is not checked against the vertex
// count until the graph is built.
type Edge struct {
	U int
	V int
}

// Bounds is an axis aligned bounding box.
type Bounds struct {
	Min Vertex
	Max Vertex
}

func (b Bounds) Center() Vertex {
	return Vertex{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Corners returns the eight corners of the box.
func (b Bounds) Corners() [8]Vertex {
	var c [8]Vertex
	for i := 0; i < 8; i++ {
		c[i].X = b.Min.X
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		c[i].Y = b.Min.Y
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		c[i].Z = b.Min.Z
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// boundsOf returns the box around pts. ok is false for an empty slice.
func boundsOf(pts []Vertex) (b Bounds, ok bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}
	b.Min, b.Max = pts[0], pts[0]
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b, true
}
