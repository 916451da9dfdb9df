package wiregraph

// Graph is the renderable geometry: a point set matching the loaded
// vertices one to one, and the line segments between them.
type Graph struct {
	Points []Vertex
	Lines  []Edge
}

// BuildGraph copies the vertices and keeps every edge whose indices fall
// inside the vertex slice. Other edges are dropped without a diagnostic.
func BuildGraph(vertices []Vertex, edges []Edge) *Graph {
	g := &Graph{
		Points: make([]Vertex, len(vertices)),
		Lines:  make([]Edge, 0, len(edges)),
	}
	copy(g.Points, vertices)

	for _, e := range edges {
		if !g.validEdge(e) {
			continue
		}
		g.Lines = append(g.Lines, e)
	}

	return g
}

func (g *Graph) validEdge(e Edge) bool {
	n := len(g.Points)
	return e.U >= 0 && e.V >= 0 && e.U < n && e.V < n
}

func (g *Graph) PointCount() int {
	return len(g.Points)
}

func (g *Graph) LineCount() int {
	return len(g.Lines)
}

// Bounds returns the box around the points in graph space. ok is false
// for an empty graph.
func (g *Graph) Bounds() (Bounds, bool) {
	return boundsOf(g.Points)
}
