package wiregraph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testConfig(t *testing.T, vertices, edges string) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.VertexFile = writeTempFile(t, "embedding.txt", vertices)
	cfg.EdgeFile = writeTempFile(t, "graph.txt", edges)
	cfg.OutputPrefix = filepath.Join(t.TempDir(), "graph")
	return cfg
}

func TestNewScene(t *testing.T) {
	cfg := testConfig(t, "0 0 0\n1 0 0\n0 1 0\n", "0 1\n1 2\n5 6\n")
	cfg.StartPosition = [3]float64{0, 0, -2}

	scene, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}

	g := scene.Actor.Graph()
	if g.PointCount() != 3 || g.LineCount() != 2 {
		t.Errorf("graph has %d points and %d lines, want 3 and 2", g.PointCount(), g.LineCount())
	}
	if scene.Actor.Color != cfg.LineColor.RGBA() || scene.Actor.LineWidth != 2 {
		t.Errorf("actor colour %v width %f", scene.Actor.Color, scene.Actor.LineWidth)
	}
	if scene.World.Background != cfg.Background.RGBA() {
		t.Errorf("background = %v", scene.World.Background)
	}
	if got := scene.Transform.Matrix().Translation(); got != (Vertex{0, 0, -2}) {
		t.Errorf("start translation = %v, want {0 0 -2}", got)
	}
	if !almostEqualState(scene.Interaction.Home(), scene.World.Camera().State()) {
		t.Error("home view is not the initial camera")
	}
	if !almostEqualVec3(scene.World.Camera().GetFocalPoint(), Vertex{0.5, 0.5, -2}.Vec3()) {
		t.Errorf("camera is not framed on the graph: %v", scene.World.Camera().GetFocalPoint())
	}

	// Unhandled keys reach the trackball.
	scene.Interaction.HandleKey(KeyE)
	if !scene.Trackball.QuitRequested() {
		t.Error("e did not reach the trackball")
	}
}

func TestNewSceneMissingEdges(t *testing.T) {
	cfg := testConfig(t, "0 0\n1 1\n", "")
	cfg.EdgeFile = filepath.Join(t.TempDir(), "none.txt")

	scene, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	if scene.Actor.Graph().LineCount() != 0 {
		t.Errorf("LineCount() = %d, want 0", scene.Actor.Graph().LineCount())
	}
}

func TestRunWithoutVertices(t *testing.T) {
	testCases := []struct {
		name     string
		vertices string
		missing  bool
	}{
		{"Empty file", "", false},
		{"Only bad lines", "x y z\n1\n\n", false},
		{"Missing file", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t, tc.vertices, "0 1\n")
			if tc.missing {
				cfg.VertexFile = filepath.Join(t.TempDir(), "none.txt")
			}

			err := Run(cfg)
			if !errors.Is(err, ErrNoVertices) {
				t.Fatalf("Run() error = %v, want ErrNoVertices", err)
			}
			if _, statErr := os.Stat(cfg.OutputPrefix + ".obj"); statErr == nil {
				t.Error("Run() exported a scene without vertices")
			}
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t, "0 0 0\n", "")
	cfg.Width = 0

	err := Run(cfg)
	if err == nil {
		t.Fatal("Run() with an invalid config returned no error")
	}
	if errors.Is(err, ErrNoVertices) {
		t.Errorf("Run() error = %v, want a config error", err)
	}
}
