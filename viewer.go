package wiregraph

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoVertices is returned when the vertex file yields no points. No
// window is created in that case.
var ErrNoVertices = errors.New("no vertices loaded")

// Scene is everything the viewer needs, built from the input files before
// the window opens.
type Scene struct {
	World       *World
	Actor       *Actor
	Transform   *Transform
	HUD         *AxesOverlay
	Interaction *Interaction
	Trackball   *Trackball
}

// NewScene loads the graph files named in cfg and sets up the world, the
// camera home view and the input handlers.
func NewScene(cfg Config) (*Scene, error) {
	vertices := ReadVertices(cfg.VertexFile)
	edges := ReadEdges(cfg.EdgeFile)

	log.Printf("Loaded %d vertices", len(vertices))
	log.Printf("Loaded %d edges", len(edges))

	if len(vertices) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.VertexFile, ErrNoVertices)
	}

	graph := BuildGraph(vertices, edges)
	start := cfg.StartPosition
	transform := NewTransform(NewVertex(start[0], start[1], start[2]))

	actor := NewActor("graph", graph, transform)
	actor.Color = cfg.LineColor.RGBA()
	actor.LineWidth = float32(cfg.LineWidth)

	world := NewWorld(cfg.Background.RGBA())
	world.AddActor(actor)
	world.ResetCamera()

	hud := NewAxesOverlay(cfg.HUDViewport)
	trackball := NewTrackball(world)
	interaction := NewInteraction(world, transform, hud, cfg.RotationStep)
	interaction.SetFallback(trackball)

	return &Scene{
		World:       world,
		Actor:       actor,
		Transform:   transform,
		HUD:         hud,
		Interaction: interaction,
		Trackball:   trackball,
	}, nil
}

// Run builds the scene, exports it once and then runs the window until it
// is closed.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	scene, err := NewScene(cfg)
	if err != nil {
		return err
	}

	if err := ExportOBJ(cfg.OutputPrefix, scene.World); err != nil {
		log.Printf("Export failed: %v", err)
	} else {
		log.Printf("Exported %s.obj and %s.mtl", cfg.OutputPrefix, cfg.OutputPrefix)
	}

	g := NewGame(scene, cfg.Snapshot)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	log.Println("Starting interactive session...")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
