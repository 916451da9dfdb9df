package wiregraph

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// World holds the actors, the camera and the background of the main view.
type World struct {
	Background color.RGBA

	actors []*Actor
	camera *Camera
}

func NewWorld(background color.RGBA) *World {
	return &World{
		Background: background,
		camera:     NewCamera(),
	}
}

func (w *World) AddActor(a *Actor) {
	w.actors = append(w.actors, a)
}

func (w *World) Actors() []*Actor {
	return w.actors
}

func (w *World) Camera() *Camera {
	return w.camera
}

// Bounds is the union of the actor bounds. ok is false when no actor has
// any points.
func (w *World) Bounds() (Bounds, bool) {
	var all Bounds
	found := false
	for _, a := range w.actors {
		b, ok := a.Bounds()
		if !ok {
			continue
		}
		if !found {
			all = b
			found = true
			continue
		}
		all.Min.X = math.Min(all.Min.X, b.Min.X)
		all.Min.Y = math.Min(all.Min.Y, b.Min.Y)
		all.Min.Z = math.Min(all.Min.Z, b.Min.Z)
		all.Max.X = math.Max(all.Max.X, b.Max.X)
		all.Max.Y = math.Max(all.Max.Y, b.Max.Y)
		all.Max.Z = math.Max(all.Max.Z, b.Max.Z)
	}
	return all, found
}

// ResetCamera frames every actor.
func (w *World) ResetCamera() {
	if b, ok := w.Bounds(); ok {
		w.camera.ResetToBounds(b)
	}
}

func (w *World) ResetCameraClippingRange() {
	if b, ok := w.Bounds(); ok {
		w.camera.ResetClippingRange(b)
	}
}

// Segment is a projected line in screen pixels.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// ProjectActor returns the actor's lines in screen space for a viewport of
// xsize by ysize pixels. Lines are clipped to the camera's near and far
// planes; lines entirely outside are left out.
func (w *World) ProjectActor(a *Actor, xsize, ysize int) []Segment {
	cam := w.camera
	near, far := cam.ClippingRange()
	focal := cam.FocalLength(ysize)
	cx, cy := float64(xsize)/2.0, float64(ysize)/2.0

	pts := a.ApplyMatrixTemp(cam.ViewMatrix())

	segs := make([]Segment, 0, len(a.graph.Lines))
	for _, l := range a.graph.Lines {
		p0, p1, ok := clipToDepthRange(pts[l.U], pts[l.V], near, far)
		if !ok {
			continue
		}
		x0, y0 := ConvertToScreen(focal, cx, cy, p0)
		x1, y1 := ConvertToScreen(focal, cx, cy, p1)
		segs = append(segs, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
	}
	return segs
}

// PaintObjects clears the screen and draws every actor.
func (w *World) PaintObjects(screen *ebiten.Image, xsize, ysize int) {
	screen.Fill(w.Background)
	for _, a := range w.actors {
		strokeSegments(screen, w.ProjectActor(a, xsize, ysize), a.LineWidth, a.Color)
	}
}

// ConvertToScreen projects a view space point. The camera looks down -Z
// and screen y grows downwards.
func ConvertToScreen(focal, cx, cy float64, p Vertex) (float32, float32) {
	depth := -p.Z
	x := cx + focal*p.X/depth
	y := cy - focal*p.Y/depth
	return float32(x), float32(y)
}

// clipToDepthRange trims the view space segment a-b to near <= depth <= far.
func clipToDepthRange(a, b Vertex, near, far float64) (Vertex, Vertex, bool) {
	da, db := -a.Z, -b.Z
	if (da < near && db < near) || (da > far && db > far) {
		return a, b, false
	}
	if da < near {
		a = intersectDepth(a, b, near)
	} else if da > far {
		a = intersectDepth(a, b, far)
	}
	if db < near {
		b = intersectDepth(b, a, near)
	} else if db > far {
		b = intersectDepth(b, a, far)
	}
	return a, b, true
}

// intersectDepth returns the point on p1-p2 at the given depth. If the line
// is parallel to the plane p1 is returned.
func intersectDepth(p1, p2 Vertex, depth float64) Vertex {
	d1, d2 := -p1.Z, -p2.Z
	if d1 == d2 {
		return p1
	}
	t := (depth - d1) / (d2 - d1)
	return Vertex{
		X: p1.X + (p2.X-p1.X)*t,
		Y: p1.Y + (p2.Y-p1.Y)*t,
		Z: -depth,
	}
}
