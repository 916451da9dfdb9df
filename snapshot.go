package wiregraph

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownImageFormat = errors.New("unknown image format")

// SaveSnapshot encodes img to fileName. The format follows the extension:
// .webp, .tga or .png.
func SaveSnapshot(fileName string, img image.Image) error {
	encode, err := snapshotEncoder(fileName)
	if err != nil {
		return err
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create snapshot %s: %w", fileName, err)
	}
	defer file.Close()

	if err := encode(file, img); err != nil {
		return fmt.Errorf("error encoding snapshot %s: %w", fileName, err)
	}
	return file.Close()
}

func snapshotEncoder(fileName string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".webp":
		return func(w io.Writer, img image.Image) error {
			return nativewebp.Encode(w, img, nil)
		}, nil
	case ".tga":
		return tga.Encode, nil
	case ".png":
		return png.Encode, nil
	}
	return nil, fmt.Errorf("%s: %w", fileName, ErrUnknownImageFormat)
}

// captureScreen copies the pixels of a drawn frame.
func captureScreen(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}
