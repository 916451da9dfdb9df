package wiregraph

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// fillPath fills the closed subpaths of path with one colour.
func fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := colorComponents(clr)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
	}
	screen.DrawTriangles(vs, is, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokeSegments draws every segment with the same width and colour.
func strokeSegments(screen *ebiten.Image, segs []Segment, strokeWidth float32, clr color.RGBA) {
	for _, s := range segs {
		vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, strokeWidth, clr, true)
	}
}

// colorComponents converts an RGBA colour to the 0-1 floats vertices use.
func colorComponents(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}
