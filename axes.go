package wiregraph

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

const (
	axisLineWidth  = 2
	axisHeadLength = 8.0
	axisHeadWidth  = 4.0
	labelOffset    = 8.0
)

// Axis is one arrow of the orientation marker.
type Axis struct {
	Label string
	Color color.RGBA
	// Dir is the unit axis after the user matrix and the camera rotation,
	// in view space.
	Dir mgl64.Vec3
}

// AxesOverlay draws X, Y and Z arrows in a corner of the window. It shows
// the orientation of its user matrix as seen by the main camera and
// ignores any translation.
type AxesOverlay struct {
	// Viewport is xmin, ymin, xmax, ymax as fractions of the window, with
	// the origin at the bottom left.
	Viewport [4]float64

	userMatrix *Matrix
}

func NewAxesOverlay(viewport [4]float64) *AxesOverlay {
	return &AxesOverlay{
		Viewport:   viewport,
		userMatrix: IdentMatrix(),
	}
}

func (o *AxesOverlay) SetUserMatrix(m *Matrix) {
	o.userMatrix = m.Copy()
}

func (o *AxesOverlay) UserMatrix() *Matrix {
	return o.userMatrix.Copy()
}

// Axes returns the three arrows ordered from farthest to nearest.
func (o *AxesOverlay) Axes(cam *Camera) []Axis {
	view := cam.ViewMatrix()
	axes := []Axis{
		{Label: "X", Color: color.RGBA{R: 255, A: 255}, Dir: mgl64.Vec3{1, 0, 0}},
		{Label: "Y", Color: color.RGBA{G: 200, A: 255}, Dir: mgl64.Vec3{0, 1, 0}},
		{Label: "Z", Color: color.RGBA{B: 255, A: 255}, Dir: mgl64.Vec3{0, 0, 1}},
	}
	for i := range axes {
		axes[i].Dir = view.RotateVector(o.userMatrix.RotateVector(axes[i].Dir))
	}

	sort.SliceStable(axes, func(i, j int) bool {
		return axes[i].Dir[2] < axes[j].Dir[2]
	})
	return axes
}

// Rect returns the overlay area in screen pixels.
func (o *AxesOverlay) Rect(xsize, ysize int) (x0, y0, x1, y1 float64) {
	w, h := float64(xsize), float64(ysize)
	x0 = o.Viewport[0] * w
	x1 = o.Viewport[2] * w
	y0 = (1.0 - o.Viewport[3]) * h
	y1 = (1.0 - o.Viewport[1]) * h
	return x0, y0, x1, y1
}

func (o *AxesOverlay) Draw(screen *ebiten.Image, cam *Camera, xsize, ysize int) {
	x0, y0, x1, y1 := o.Rect(xsize, ysize)
	cx, cy := (x0+x1)/2.0, (y0+y1)/2.0
	length := 0.35 * math.Min(x1-x0, y1-y0)

	for _, a := range o.Axes(cam) {
		ex := cx + a.Dir[0]*length
		ey := cy - a.Dir[1]*length

		dx, dy := ex-cx, ey-cy
		l := math.Hypot(dx, dy)
		if l > 1 {
			vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), axisLineWidth, a.Color, true)
			ux, uy := dx/l, dy/l
			drawArrowHead(screen, ex, ey, ux, uy, a.Color)
			ex += ux * (axisHeadLength + labelOffset)
			ey += uy * (axisHeadLength + labelOffset)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(ex, ey)
		op.ColorScale.ScaleWithColor(a.Color)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, a.Label, labelFace, op)
	}
}

// drawArrowHead fills a triangle whose base sits at (x, y) and points
// along (ux, uy).
func drawArrowHead(screen *ebiten.Image, x, y, ux, uy float64, clr color.RGBA) {
	fillPath(screen, arrowHeadPath(x, y, ux, uy), clr)
}

func arrowHeadPath(x, y, ux, uy float64) *vector.Path {
	px, py := -uy*axisHeadWidth, ux*axisHeadWidth

	path := &vector.Path{}
	path.MoveTo(float32(x+ux*axisHeadLength), float32(y+uy*axisHeadLength))
	path.LineTo(float32(x+px), float32(y+py))
	path.LineTo(float32(x-px), float32(y-py))
	path.Close()
	return path
}
