package wiregraph

// Key identifies a keyboard key independently of the window library.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyR
	KeyE
	KeyQ
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "space"
	case KeyR:
		return "r"
	case KeyE:
		return "e"
	case KeyQ:
		return "q"
	}
	return "unknown"
}

// KeyHandler reacts to a key press and reports whether it used the key.
type KeyHandler interface {
	HandleKey(k Key) bool
}

// KeyHandlerFunc adapts a function to KeyHandler.
type KeyHandlerFunc func(k Key) bool

func (f KeyHandlerFunc) HandleKey(k Key) bool {
	return f(k)
}

// Interaction rotates the graph with the arrow keys and resets the graph
// and camera with space. Every other key goes to the fallback handler.
type Interaction struct {
	world     *World
	transform *Transform
	hud       *AxesOverlay
	home      CameraState
	step      float64

	fallback KeyHandler
	redraw   func()
}

// NewInteraction takes the camera's current state as the home view, so the
// camera must already be framed.
func NewInteraction(w *World, t *Transform, hud *AxesOverlay, step float64) *Interaction {
	i := &Interaction{
		world:     w,
		transform: t,
		hud:       hud,
		home:      w.Camera().State(),
		step:      step,
	}
	i.syncHUD()
	return i
}

func (i *Interaction) SetFallback(h KeyHandler) {
	i.fallback = h
}

// OnRedraw sets the function used to ask for a new frame.
func (i *Interaction) OnRedraw(fn func()) {
	i.redraw = fn
}

func (i *Interaction) Home() CameraState {
	return i.home
}

func (i *Interaction) HandleKey(k Key) bool {
	switch k {
	case KeyUp:
		i.transform.RotateX(i.step)
	case KeyDown:
		i.transform.RotateX(-i.step)
	case KeyLeft:
		i.transform.RotateY(i.step)
	case KeyRight:
		i.transform.RotateY(-i.step)
	case KeySpace:
		i.transform.Reset()
		i.world.Camera().Restore(i.home)
		i.world.ResetCameraClippingRange()
	default:
		if i.fallback != nil {
			return i.fallback.HandleKey(k)
		}
		return false
	}

	i.syncHUD()
	if i.redraw != nil {
		i.redraw()
	}
	return true
}

// syncHUD copies the transform's orientation, without translation, to the
// axes overlay.
func (i *Interaction) syncHUD() {
	if i.hud == nil {
		return
	}
	i.hud.SetUserMatrix(i.transform.Orientation())
}
