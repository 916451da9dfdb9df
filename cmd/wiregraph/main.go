package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/smasonuk/wiregraph"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, wiregraph.ErrNoVertices) {
			fmt.Fprintln(os.Stderr, "No vertices loaded!")
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var flags wiregraph.Flags

	cmd := &cobra.Command{
		Use:   "wiregraph",
		Short: "Interactive 3D wireframe viewer for point and edge lists",
		Long: `wiregraph loads points from a vertex file and index pairs from an edge
file, exports the graph as OBJ/MTL and opens an interactive 3D view.

Drag with the left mouse button to orbit, shift+left or middle to pan,
right button or wheel to zoom. Arrow keys rotate the graph, space resets
the graph and the camera, r refits the camera, e or q quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wiregraph.DefaultConfig()
			if configFile != "" {
				var err error
				cfg, err = wiregraph.LoadConfig(configFile)
				if err != nil {
					return err
				}
			}
			cfg.Resolve(flags)
			return wiregraph.Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flags.VertexFile, "vertices", "", "Vertex file (default ./tmp/graph/embedding.txt)")
	cmd.Flags().StringVar(&flags.EdgeFile, "edges", "", "Edge file (default graph.txt)")
	cmd.Flags().StringVarP(&flags.OutputPrefix, "output", "o", "", "Prefix for the exported .obj and .mtl (default graph)")
	cmd.Flags().StringVar(&flags.Snapshot, "snapshot", "", "Write the first frame to this .webp, .tga or .png file")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "Window width (default 800)")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "Window height (default 600)")

	return cmd
}
