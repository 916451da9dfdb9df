package wiregraph

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragRotate
	dragPan
	dragDolly
)

const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

var keyBindings = []struct {
	ebitenKey ebiten.Key
	key       Key
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyR, KeyR},
	{ebiten.KeyE, KeyE},
	{ebiten.KeyQ, KeyQ},
}

// Game runs the scene in an ebiten window. The screen is kept between
// frames and only repainted after a redraw request.
type Game struct {
	scene *Scene

	width, height int
	dirty         bool

	drag         dragMode
	dragButton   ebiten.MouseButton
	lastX, lastY int

	snapshotPath string
}

func NewGame(scene *Scene, snapshotPath string) *Game {
	g := &Game{
		scene:        scene,
		dirty:        true,
		snapshotPath: snapshotPath,
	}
	scene.Interaction.OnRedraw(g.RequestRedraw)
	scene.Trackball.OnRedraw(g.RequestRedraw)
	return g
}

func (g *Game) RequestRedraw() {
	g.dirty = true
}

func (g *Game) Update() error {
	for _, b := range keyBindings {
		if repeatingKeyPressed(b.ebitenKey) {
			g.scene.Interaction.HandleKey(b.key)
		}
	}
	if g.scene.Trackball.QuitRequested() {
		return ebiten.Termination
	}

	g.updateMouse()
	return nil
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	tb := g.scene.Trackball

	if g.drag == dragNone {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			g.drag, g.dragButton = dragRotate, ebiten.MouseButtonLeft
			if ebiten.IsKeyPressed(ebiten.KeyShift) {
				g.drag = dragPan
			}
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
			g.drag, g.dragButton = dragPan, ebiten.MouseButtonMiddle
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			g.drag, g.dragButton = dragDolly, ebiten.MouseButtonRight
		}
		g.lastX, g.lastY = x, y
	}

	if g.drag != dragNone {
		dx, dy := x-g.lastX, y-g.lastY
		switch g.drag {
		case dragRotate:
			tb.Rotate(dx, dy, g.width, g.height)
		case dragPan:
			tb.Pan(dx, dy, g.height)
		case dragDolly:
			tb.Dolly(dy, g.height)
		}
		g.lastX, g.lastY = x, y

		if inpututil.IsMouseButtonJustReleased(g.dragButton) {
			g.drag = dragNone
		}
	}

	_, yoff := ebiten.Wheel()
	tb.Wheel(yoff)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	world := g.scene.World
	world.PaintObjects(screen, w, h)
	g.scene.HUD.Draw(screen, world.Camera(), w, h)

	if g.snapshotPath != "" {
		if err := SaveSnapshot(g.snapshotPath, captureScreen(screen)); err != nil {
			log.Printf("Snapshot failed: %v", err)
		} else {
			log.Printf("Saved snapshot %s", g.snapshotPath)
		}
		g.snapshotPath = ""
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}

func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
