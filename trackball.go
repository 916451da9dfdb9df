package wiregraph

import "math"

const (
	motionFactor      = 10.0
	wheelMotionFactor = 1.0
	dollyBase         = 1.1
)

// Trackball is the default camera style: mouse drags orbit, pan and dolly
// the camera about its focal point. It also handles the keys the graph
// interaction does not.
type Trackball struct {
	world  *World
	redraw func()
	quit   bool
}

func NewTrackball(w *World) *Trackball {
	return &Trackball{world: w}
}

// OnRedraw sets the function used to ask for a new frame.
func (t *Trackball) OnRedraw(fn func()) {
	t.redraw = fn
}

// QuitRequested reports whether a quit key was pressed.
func (t *Trackball) QuitRequested() bool {
	return t.quit
}

func (t *Trackball) HandleKey(k Key) bool {
	switch k {
	case KeyR:
		t.world.ResetCamera()
		t.changed()
	case KeyE, KeyQ:
		t.quit = true
	default:
		return false
	}
	return true
}

// Rotate orbits the camera for a cursor move of dx, dy pixels in a window
// of xsize by ysize. Screen y grows downwards.
func (t *Trackball) Rotate(dx, dy, xsize, ysize int) {
	if (dx == 0 && dy == 0) || xsize <= 0 || ysize <= 0 {
		return
	}
	deltaAzimuth := -20.0 / float64(xsize)
	deltaElevation := -20.0 / float64(ysize)

	rxf := float64(dx) * deltaAzimuth * motionFactor
	ryf := float64(-dy) * deltaElevation * motionFactor

	cam := t.world.Camera()
	cam.Azimuth(rxf)
	cam.Elevation(ryf)
	cam.OrthogonalizeViewUp()

	t.world.ResetCameraClippingRange()
	t.changed()
}

// Pan moves the camera so the scene follows the cursor.
func (t *Trackball) Pan(dx, dy, ysize int) {
	if dx == 0 && dy == 0 {
		return
	}
	cam := t.world.Camera()
	scale := cam.WorldPerPixel(ysize)
	cam.Pan(-float64(dx)*scale, float64(dy)*scale)

	t.world.ResetCameraClippingRange()
	t.changed()
}

// Dolly zooms for a vertical cursor move. Moving up zooms in.
func (t *Trackball) Dolly(dy, ysize int) {
	if dy == 0 || ysize <= 0 {
		return
	}
	dyf := motionFactor * float64(-dy) / (float64(ysize) / 2.0)
	t.dolly(math.Pow(dollyBase, dyf))
}

// Wheel zooms for a mouse wheel offset. Positive offsets zoom in.
func (t *Trackball) Wheel(yoff float64) {
	if yoff == 0 {
		return
	}
	t.dolly(math.Pow(dollyBase, motionFactor*0.2*wheelMotionFactor*yoff))
}

func (t *Trackball) dolly(factor float64) {
	t.world.Camera().Dolly(factor)
	t.world.ResetCameraClippingRange()
	t.changed()
}

func (t *Trackball) changed() {
	if t.redraw != nil {
		t.redraw()
	}
}
