package wiregraph

import "github.com/go-gl/mathgl/mgl64"

// Transform is the user transform of the graph: a fixed start
// translation followed by the rotations accumulated from key presses.
// Rotations are applied about the graph's own axes, so each new one is
// composed on the inside of the existing matrix.
type Transform struct {
	start  Vertex
	matrix *Matrix
}

func NewTransform(start Vertex) *Transform {
	return &Transform{
		start:  start,
		matrix: TransMatrix(start.X, start.Y, start.Z),
	}
}

// RotateX rotates about the local X axis by degrees.
func (t *Transform) RotateX(degrees float64) {
	t.rotate(ROTX, degrees)
}

// RotateY rotates about the local Y axis by degrees.
func (t *Transform) RotateY(degrees float64) {
	t.rotate(ROTY, degrees)
}

func (t *Transform) rotate(axis int, degrees float64) {
	t.matrix = t.matrix.MultiplyBy(NewRotationMatrix(axis, mgl64.DegToRad(degrees)))
}

// Reset drops all rotations and restores the start translation.
func (t *Transform) Reset() {
	t.matrix = TransMatrix(t.start.X, t.start.Y, t.start.Z)
}

func (t *Transform) Start() Vertex {
	return t.start
}

// Matrix returns a copy of the composite matrix.
func (t *Transform) Matrix() *Matrix {
	return t.matrix.Copy()
}

// Orientation is the rotation part of the composite matrix with the
// translation terms forced to zero.
func (t *Transform) Orientation() *Matrix {
	return t.matrix.WithoutTranslation()
}
