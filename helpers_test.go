package wiregraph

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func almostEqualVertex(a, b Vertex) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func almostEqualVec3(a, b mgl64.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

func almostEqualState(a, b CameraState) bool {
	return almostEqualVec3(a.Position, b.Position) &&
		almostEqualVec3(a.FocalPoint, b.FocalPoint) &&
		almostEqualVec3(a.ViewUp, b.ViewUp)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// exampleGraph is three points and two in-range edges out of three.
func exampleGraph() *Graph {
	vertices := []Vertex{
		NewVertex(0, 0, 0),
		NewVertex(1, 0, 0),
		NewVertex(0, 1, 0),
	}
	edges := []Edge{{0, 1}, {1, 2}, {5, 6}}
	return BuildGraph(vertices, edges)
}

// newTestWorld frames the example graph with its transform at start.
func newTestWorld(start Vertex) (*World, *Transform) {
	transform := NewTransform(start)
	world := NewWorld(DefaultConfig().Background.RGBA())
	world.AddActor(NewActor("graph", exampleGraph(), transform))
	world.ResetCamera()
	return world, transform
}
