package wiregraph

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func unitCubeBounds() Bounds {
	return Bounds{Min: Vertex{-1, -1, -1}, Max: Vertex{1, 1, 1}}
}

func TestResetToBounds(t *testing.T) {
	cam := NewCamera()
	cam.ResetToBounds(unitCubeBounds())

	radius := math.Sqrt(3)
	wantDistance := radius / math.Sin(mgl64.DegToRad(cam.ViewAngle()/2))

	if !almostEqualVec3(cam.GetFocalPoint(), mgl64.Vec3{0, 0, 0}) {
		t.Errorf("focal point = %v, want the box centre", cam.GetFocalPoint())
	}
	if !almostEqual(cam.Distance(), wantDistance) {
		t.Errorf("Distance() = %f, want %f", cam.Distance(), wantDistance)
	}
	if !almostEqualVec3(cam.GetPosition(), mgl64.Vec3{0, 0, wantDistance}) {
		t.Errorf("position = %v, want on +Z", cam.GetPosition())
	}
	if !almostEqualVec3(cam.GetViewUp(), mgl64.Vec3{0, 1, 0}) {
		t.Errorf("view up = %v, want [0 1 0]", cam.GetViewUp())
	}
}

func TestResetToBoundsKeepsDirection(t *testing.T) {
	cam := NewCamera()
	cam.Azimuth(90)
	cam.ResetToBounds(Bounds{Min: Vertex{9, 9, 9}, Max: Vertex{11, 11, 11}})

	dop := cam.DirectionOfProjection()
	if !almostEqualVec3(dop, mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("direction of projection = %v, want [-1 0 0]", dop)
	}
	if !almostEqualVec3(cam.GetFocalPoint(), mgl64.Vec3{10, 10, 10}) {
		t.Errorf("focal point = %v, want [10 10 10]", cam.GetFocalPoint())
	}
}

func TestResetToBoundsFlatBox(t *testing.T) {
	cam := NewCamera()
	cam.ResetToBounds(Bounds{Min: Vertex{2, 2, 2}, Max: Vertex{2, 2, 2}})

	if cam.Distance() <= 0 || math.IsInf(cam.Distance(), 0) || math.IsNaN(cam.Distance()) {
		t.Errorf("Distance() = %f for a single point box", cam.Distance())
	}
}

func TestResetClippingRange(t *testing.T) {
	cam := NewCamera()
	b := unitCubeBounds()
	cam.ResetToBounds(b)

	near, far := cam.ClippingRange()
	if near <= 0 || near >= far {
		t.Fatalf("ClippingRange() = %f, %f", near, far)
	}

	dop := cam.DirectionOfProjection()
	for _, c := range b.Corners() {
		d := c.Vec3().Sub(cam.GetPosition()).Dot(dop)
		if d < near || d > far {
			t.Errorf("corner %v at depth %f is outside [%f, %f]", c, d, near, far)
		}
	}
}

func TestResetClippingRangeBehindEye(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(mgl64.Vec3{0, 0, 0})
	cam.SetFocalPoint(mgl64.Vec3{0, 0, -1})
	cam.ResetClippingRange(Bounds{Min: Vertex{-1, -1, 5}, Max: Vertex{1, 1, 6}})

	near, far := cam.ClippingRange()
	if near <= 0 || near >= far {
		t.Errorf("ClippingRange() = %f, %f", near, far)
	}
}

func TestOrbitKeepsDistance(t *testing.T) {
	testCases := []struct {
		name string
		move func(c *Camera)
	}{
		{"Azimuth", func(c *Camera) { c.Azimuth(33) }},
		{"Elevation", func(c *Camera) { c.Elevation(-21) }},
		{"Both", func(c *Camera) { c.Azimuth(-80); c.Elevation(45); c.OrthogonalizeViewUp() }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera()
			cam.ResetToBounds(unitCubeBounds())
			before := cam.Distance()
			focal := cam.GetFocalPoint()

			tc.move(cam)

			if !almostEqual(cam.Distance(), before) {
				t.Errorf("Distance() = %f, want %f", cam.Distance(), before)
			}
			if !almostEqualVec3(cam.GetFocalPoint(), focal) {
				t.Errorf("focal point moved to %v", cam.GetFocalPoint())
			}
		})
	}
}

func TestAzimuth(t *testing.T) {
	cam := NewCamera()
	cam.Azimuth(90)

	if !almostEqualVec3(cam.GetPosition(), mgl64.Vec3{1, 0, 0}) {
		t.Errorf("position after Azimuth(90) = %v, want [1 0 0]", cam.GetPosition())
	}
}

func TestElevation(t *testing.T) {
	cam := NewCamera()
	cam.Elevation(45)

	s := math.Sqrt(0.5)
	if !almostEqualVec3(cam.GetPosition(), mgl64.Vec3{0, s, s}) {
		t.Errorf("position after Elevation(45) = %v, want [0 %f %f]", cam.GetPosition(), s, s)
	}

	cam.OrthogonalizeViewUp()
	if d := cam.GetViewUp().Dot(cam.DirectionOfProjection()); !almostEqual(d, 0) {
		t.Errorf("view up is not orthogonal to the view direction: dot = %f", d)
	}
	if !almostEqual(cam.GetViewUp().Len(), 1) {
		t.Errorf("view up %v is not a unit vector", cam.GetViewUp())
	}
	if cam.GetViewUp()[1] <= 0 {
		t.Errorf("view up %v flipped", cam.GetViewUp())
	}
}

func TestDolly(t *testing.T) {
	testCases := []struct {
		name     string
		factor   float64
		expected float64
	}{
		{"Closer", 2, 5},
		{"Further", 0.5, 20},
		{"Unchanged", 1, 10},
		{"Zero is ignored", 0, 10},
		{"Negative is ignored", -3, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera()
			cam.SetPosition(mgl64.Vec3{0, 0, 10})
			cam.Dolly(tc.factor)

			if !almostEqual(cam.Distance(), tc.expected) {
				t.Errorf("Distance() = %f, want %f", cam.Distance(), tc.expected)
			}
			if !almostEqualVec3(cam.DirectionOfProjection(), mgl64.Vec3{0, 0, -1}) {
				t.Errorf("direction changed to %v", cam.DirectionOfProjection())
			}
		})
	}
}

func TestPan(t *testing.T) {
	cam := NewCamera()
	cam.Pan(2, -3)

	if !almostEqualVec3(cam.GetPosition(), mgl64.Vec3{2, -3, 1}) {
		t.Errorf("position = %v, want [2 -3 1]", cam.GetPosition())
	}
	if !almostEqualVec3(cam.GetFocalPoint(), mgl64.Vec3{2, -3, 0}) {
		t.Errorf("focal point = %v, want [2 -3 0]", cam.GetFocalPoint())
	}
}

func TestStateRestore(t *testing.T) {
	cam := NewCamera()
	cam.ResetToBounds(unitCubeBounds())
	home := cam.State()

	cam.Azimuth(40)
	cam.Elevation(10)
	cam.OrthogonalizeViewUp()
	cam.Dolly(3)
	cam.Pan(1, 1)

	cam.Restore(home)
	if !almostEqualState(cam.State(), home) {
		t.Errorf("State() after Restore = %+v, want %+v", cam.State(), home)
	}
}

func TestViewMatrix(t *testing.T) {
	cam := NewCamera()
	cam.ResetToBounds(unitCubeBounds())
	view := cam.ViewMatrix()

	got := view.TransformPoint(VertexFromVec3(cam.GetFocalPoint()))
	want := Vertex{0, 0, -cam.Distance()}
	if !almostEqualVertex(got, want) {
		t.Errorf("focal point in view space = %v, want %v", got, want)
	}

	if eye := view.TransformPoint(VertexFromVec3(cam.GetPosition())); !almostEqualVertex(eye, Vertex{}) {
		t.Errorf("eye in view space = %v, want the origin", eye)
	}
}

func TestPixelScale(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(mgl64.Vec3{0, 0, 7})

	for _, h := range []int{100, 600, 1080} {
		got := cam.FocalLength(h) * cam.WorldPerPixel(h)
		if !almostEqual(got, cam.Distance()) {
			t.Errorf("height %d: FocalLength*WorldPerPixel = %f, want %f", h, got, cam.Distance())
		}
	}
	if cam.WorldPerPixel(0) != 0 {
		t.Error("WorldPerPixel(0) should be 0")
	}
}
