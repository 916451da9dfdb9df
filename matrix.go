package wiregraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 transform applied to row vectors: a point p maps to
// p·M, so row 3 holds the translation. a.MultiplyBy(b) applies b first
// and then a.
type Matrix struct {
	Rows [][]float64
}

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func newRows() [][]float64 {
	m := make([][]float64, 4)
	for i := range m {
		m[i] = make([]float64, 4)
	}
	return m
}

func NewMatrixFromData(aMatrix [][]float64) *Matrix {
	m := &Matrix{
		Rows: make([][]float64, len(aMatrix)),
	}
	for i := range aMatrix {
		m.Rows[i] = make([]float64, len(aMatrix[i]))
		copy(m.Rows[i], aMatrix[i])
	}
	return m
}

// NewRotationMatrix returns a right handed rotation of theta radians about
// the given axis.
func NewRotationMatrix(aRotation int, theta float64) *Matrix {
	m := newRows()
	c, s := math.Cos(theta), math.Sin(theta)
	switch aRotation {
	case ROTX:
		m[0][0] = 1.0
		m[1][1] = c
		m[2][1] = -s
		m[1][2] = s
		m[2][2] = c
		m[3][3] = 1.0
	case ROTY:
		m[0][0] = c
		m[2][0] = s
		m[0][2] = -s
		m[2][2] = c
		m[1][1] = 1.0
		m[3][3] = 1.0
	case ROTZ:
		m[2][2] = 1.0
		m[3][3] = 1.0
		m[0][0] = c
		m[1][0] = -s
		m[0][1] = s
		m[1][1] = c
	}
	return &Matrix{Rows: m}
}

func IdentMatrix() *Matrix {
	m := newRows()
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return &Matrix{Rows: m}
}

func TransMatrix(x, y, z float64) *Matrix {
	nm := newRows()
	nm[3][0] = x
	nm[3][1] = y
	nm[3][2] = z
	nm[0][0], nm[1][1], nm[2][2], nm[3][3] = 1.0, 1.0, 1.0, 1.0
	return &Matrix{Rows: nm}
}

func (m *Matrix) MultiplyBy(aMatrix *Matrix) *Matrix {
	newMatrixData := make([][]float64, len(aMatrix.Rows))
	for i := range newMatrixData {
		newMatrixData[i] = make([]float64, 4)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < len(aMatrix.Rows); x++ {
			newMatrixData[x][y] = m.Rows[0][y]*aMatrix.Rows[x][0] +
				m.Rows[1][y]*aMatrix.Rows[x][1] +
				m.Rows[2][y]*aMatrix.Rows[x][2] +
				m.Rows[3][y]*aMatrix.Rows[x][3]
		}
	}
	return &Matrix{Rows: newMatrixData}
}

// TransformPoint applies rotation and translation to p.
func (m *Matrix) TransformPoint(p Vertex) Vertex {
	return Vertex{
		X: m.Rows[0][0]*p.X + m.Rows[1][0]*p.Y + m.Rows[2][0]*p.Z + m.Rows[3][0],
		Y: m.Rows[0][1]*p.X + m.Rows[1][1]*p.Y + m.Rows[2][1]*p.Z + m.Rows[3][1],
		Z: m.Rows[0][2]*p.X + m.Rows[1][2]*p.Y + m.Rows[2][2]*p.Z + m.Rows[3][2],
	}
}

// TransformPoints writes the transformed src into dest, growing it if
// needed, and returns it.
func (m *Matrix) TransformPoints(src, dest []Vertex) []Vertex {
	if cap(dest) < len(src) {
		dest = make([]Vertex, len(src))
	}
	dest = dest[:len(src)]
	for i, p := range src {
		dest[i] = m.TransformPoint(p)
	}
	return dest
}

// RotateVector rotates v by the matrix's 3x3 rotation component.
// It does not apply translation, making it suitable for direction vectors.
func (m *Matrix) RotateVector(v mgl64.Vec3) mgl64.Vec3 {
	vx, vy, vz := v[0], v[1], v[2]
	return mgl64.Vec3{
		m.Rows[0][0]*vx + m.Rows[1][0]*vy + m.Rows[2][0]*vz,
		m.Rows[0][1]*vx + m.Rows[1][1]*vy + m.Rows[2][1]*vz,
		m.Rows[0][2]*vx + m.Rows[1][2]*vy + m.Rows[2][2]*vz,
	}
}

func (m *Matrix) Translation() Vertex {
	return Vertex{X: m.Rows[3][0], Y: m.Rows[3][1], Z: m.Rows[3][2]}
}

// WithoutTranslation returns a copy with the translation terms zeroed.
func (m *Matrix) WithoutTranslation() *Matrix {
	c := m.Copy()
	c.Rows[3][0] = 0.0
	c.Rows[3][1] = 0.0
	c.Rows[3][2] = 0.0
	return c
}

func (m *Matrix) ApproxEqual(other *Matrix, threshold float64) bool {
	if len(m.Rows) != len(other.Rows) {
		return false
	}
	for i := range m.Rows {
		if len(m.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range m.Rows[i] {
			if math.Abs(m.Rows[i][j]-other.Rows[i][j]) > threshold {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) Copy() *Matrix {
	return NewMatrixFromData(m.Rows)
}

// ToMatrix converts a column-major mgl64 matrix. Columns of m become rows,
// which keeps the translation in row 3.
func ToMatrix(m mgl64.Mat4) *Matrix {
	return NewMatrixFromData(
		[][]float64{
			{m[0], m[1], m[2], m[3]},
			{m[4], m[5], m[6], m[7]},
			{m[8], m[9], m[10], m[11]},
			{m[12], m[13], m[14], m[15]},
		},
	)
}

// Mat4 is the inverse of ToMatrix.
func (m *Matrix) Mat4() mgl64.Mat4 {
	var out mgl64.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m.Rows[i][j]
		}
	}
	return out
}
