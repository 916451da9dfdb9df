package wiregraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultViewAngle = 30.0
	// nearPlaneTolerance keeps the near plane from collapsing onto the eye.
	nearPlaneTolerance = 0.001
	clippingExpansion  = 0.5
)

// CameraState is the part of the camera that is saved as the home view.
type CameraState struct {
	Position   mgl64.Vec3
	FocalPoint mgl64.Vec3
	ViewUp     mgl64.Vec3
}

// Camera is a perspective camera described by an eye position, the point
// it looks at and an up vector.
type Camera struct {
	position   mgl64.Vec3
	focalPoint mgl64.Vec3
	viewUp     mgl64.Vec3
	viewAngle  float64 // vertical, degrees
	near, far  float64
}

func NewCamera() *Camera {
	return &Camera{
		position:   mgl64.Vec3{0, 0, 1},
		focalPoint: mgl64.Vec3{0, 0, 0},
		viewUp:     mgl64.Vec3{0, 1, 0},
		viewAngle:  defaultViewAngle,
		near:       0.01,
		far:        1000.01,
	}
}

func (c *Camera) GetPosition() mgl64.Vec3 {
	return c.position
}

func (c *Camera) GetFocalPoint() mgl64.Vec3 {
	return c.focalPoint
}

func (c *Camera) GetViewUp() mgl64.Vec3 {
	return c.viewUp
}

func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.position = p
}

func (c *Camera) SetFocalPoint(p mgl64.Vec3) {
	c.focalPoint = p
}

func (c *Camera) SetViewUp(up mgl64.Vec3) {
	if up.Len() == 0 {
		return
	}
	c.viewUp = up.Normalize()
}

func (c *Camera) ViewAngle() float64 {
	return c.viewAngle
}

func (c *Camera) ClippingRange() (near, far float64) {
	return c.near, c.far
}

func (c *Camera) State() CameraState {
	return CameraState{
		Position:   c.position,
		FocalPoint: c.focalPoint,
		ViewUp:     c.viewUp,
	}
}

// Restore puts back a state captured with State.
func (c *Camera) Restore(s CameraState) {
	c.SetPosition(s.Position)
	c.SetFocalPoint(s.FocalPoint)
	c.SetViewUp(s.ViewUp)
}

func (c *Camera) Distance() float64 {
	return c.focalPoint.Sub(c.position).Len()
}

// DirectionOfProjection is the unit vector from the eye to the focal point.
func (c *Camera) DirectionOfProjection() mgl64.Vec3 {
	d := c.focalPoint.Sub(c.position)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

// Right is the unit vector pointing to the right of the view.
func (c *Camera) Right() mgl64.Vec3 {
	r := c.DirectionOfProjection().Cross(c.viewUp)
	if r.Len() == 0 {
		return mgl64.Vec3{1, 0, 0}
	}
	return r.Normalize()
}

// Azimuth rotates the eye about the view up vector, centred on the focal
// point.
func (c *Camera) Azimuth(degrees float64) {
	c.orbit(c.viewUp, degrees)
}

// Elevation rotates the eye about the view's horizontal axis, centred on
// the focal point. Positive angles move the eye up. The view up vector
// is left alone; call OrthogonalizeViewUp afterwards.
func (c *Camera) Elevation(degrees float64) {
	c.orbit(c.viewUp.Cross(c.DirectionOfProjection()), degrees)
}

func (c *Camera) orbit(axis mgl64.Vec3, degrees float64) {
	if axis.Len() == 0 {
		return
	}
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis.Normalize())
	offset := c.position.Sub(c.focalPoint)
	c.position = c.focalPoint.Add(q.Rotate(offset))
}

// OrthogonalizeViewUp makes the view up vector perpendicular to the
// direction of projection.
func (c *Camera) OrthogonalizeViewUp() {
	dop := c.DirectionOfProjection()
	right := dop.Cross(c.viewUp)
	if right.Len() == 0 {
		return
	}
	c.viewUp = right.Cross(dop).Normalize()
}

// Dolly moves the eye towards the focal point, dividing the distance by
// factor. Factors above one move closer.
func (c *Camera) Dolly(factor float64) {
	if factor <= 0 {
		return
	}
	d := c.Distance() / factor
	if d <= 0 {
		return
	}
	c.position = c.focalPoint.Sub(c.DirectionOfProjection().Mul(d))
}

// Pan moves the eye and the focal point together, right and up in view
// space, by world units.
func (c *Camera) Pan(right, up float64) {
	r := c.Right()
	u := r.Cross(c.DirectionOfProjection()).Normalize()
	offset := r.Mul(right).Add(u.Mul(up))
	c.position = c.position.Add(offset)
	c.focalPoint = c.focalPoint.Add(offset)
}

// WorldPerPixel is the size of a screen pixel at the focal point.
func (c *Camera) WorldPerPixel(height int) float64 {
	if height <= 0 {
		return 0
	}
	return 2.0 * c.Distance() * math.Tan(mgl64.DegToRad(c.viewAngle)/2.0) / float64(height)
}

// FocalLength converts view space to pixels for a viewport height.
func (c *Camera) FocalLength(height int) float64 {
	return (float64(height) / 2.0) / math.Tan(mgl64.DegToRad(c.viewAngle)/2.0)
}

// ViewMatrix maps world space to view space, where the camera looks
// down -Z.
func (c *Camera) ViewMatrix() *Matrix {
	return ToMatrix(mgl64.LookAtV(c.position, c.focalPoint, c.viewUp))
}

// ResetToBounds points the camera at the centre of b and backs off along
// the current view direction until the whole box fits in the view angle.
func (c *Camera) ResetToBounds(b Bounds) {
	center := b.Center().Vec3()
	w := b.Max.Vec3().Sub(b.Min.Vec3())
	radius := w.Dot(w)
	if radius == 0 {
		radius = 1.0
	}
	radius = math.Sqrt(radius) * 0.5

	distance := radius / math.Sin(mgl64.DegToRad(c.viewAngle)*0.5)

	vn := c.position.Sub(c.focalPoint)
	if vn.Len() == 0 {
		vn = mgl64.Vec3{0, 0, 1}
	}
	vn = vn.Normalize()

	if math.Abs(c.viewUp.Dot(vn)) > 0.999 {
		c.SetViewUp(mgl64.Vec3{-c.viewUp[2], c.viewUp[0], c.viewUp[1]})
	}

	c.focalPoint = center
	c.position = center.Add(vn.Mul(distance))

	c.ResetClippingRange(b)
}

// ResetClippingRange fits the near and far planes around b.
func (c *Camera) ResetClippingRange(b Bounds) {
	dop := c.DirectionOfProjection()

	near, far := math.Inf(1), math.Inf(-1)
	for _, corner := range b.Corners() {
		d := corner.Vec3().Sub(c.position).Dot(dop)
		near = math.Min(near, d)
		far = math.Max(far, d)
	}

	if far <= 0 {
		// Everything is behind the eye.
		near, far = 0.01, 1.0
	}

	span := far - near
	near = 0.99*near - span*clippingExpansion
	far = 1.01*far + span*clippingExpansion

	if near >= far {
		far = near + 0.01
	}
	if near < far*nearPlaneTolerance {
		near = far * nearPlaneTolerance
	}

	c.near, c.far = near, far
}
