package wiregraph

import (
	"image/color"
	"log"
)

// Actor places a graph in the world through a user transform and carries
// the properties it is drawn with.
type Actor struct {
	Name      string
	Color     color.RGBA
	LineWidth float32

	graph       *Graph
	transform   *Transform
	transPoints []Vertex // camera space, rebuilt on every paint
}

func NewActor(name string, g *Graph, t *Transform) *Actor {
	a := &Actor{
		Name:      name,
		Color:     color.RGBA{A: 255},
		LineWidth: 1,
		graph:     g,
		transform: t,
	}
	log.Printf("Actor %s: %d points, %d lines", name, g.PointCount(), g.LineCount())
	return a
}

func (a *Actor) Graph() *Graph {
	return a.graph
}

func (a *Actor) Transform() *Transform {
	return a.transform
}

// WorldPoints returns the graph points with the user transform applied.
func (a *Actor) WorldPoints() []Vertex {
	return a.transform.Matrix().TransformPoints(a.graph.Points, nil)
}

// Bounds is the world space box around the actor. ok is false when the
// graph has no points.
func (a *Actor) Bounds() (Bounds, bool) {
	return boundsOf(a.WorldPoints())
}

// ApplyMatrixTemp moves the points into the space described by aMatrix,
// composed after the user transform, and keeps them for painting.
func (a *Actor) ApplyMatrixTemp(aMatrix *Matrix) []Vertex {
	full := aMatrix.MultiplyBy(a.transform.Matrix())
	a.transPoints = full.TransformPoints(a.graph.Points, a.transPoints)
	return a.transPoints
}
