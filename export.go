package wiregraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExportOBJ writes the world's actors to prefix.obj and their materials to
// prefix.mtl. Points are written after each actor's user transform.
func ExportOBJ(prefix string, w *World) error {
	objName := prefix + ".obj"
	mtlName := prefix + ".mtl"

	objFile, err := os.Create(objName)
	if err != nil {
		return fmt.Errorf("could not create OBJ file %s: %w", objName, err)
	}
	defer objFile.Close()

	mtlFile, err := os.Create(mtlName)
	if err != nil {
		return fmt.Errorf("could not create MTL file %s: %w", mtlName, err)
	}
	defer mtlFile.Close()

	if err := WriteOBJ(objFile, mtlFile, filepath.Base(mtlName), w); err != nil {
		return fmt.Errorf("error writing %s: %w", objName, err)
	}

	if err := objFile.Close(); err != nil {
		return fmt.Errorf("could not close OBJ file %s: %w", objName, err)
	}
	if err := mtlFile.Close(); err != nil {
		return fmt.Errorf("could not close MTL file %s: %w", mtlName, err)
	}
	return nil
}

// WriteOBJ writes the geometry to objW and the materials to mtlW. mtlName
// is the material library name referenced from the OBJ data.
func WriteOBJ(objW, mtlW io.Writer, mtlName string, w *World) error {
	obj := bufio.NewWriter(objW)
	mtl := bufio.NewWriter(mtlW)

	_, _ = fmt.Fprintln(obj, "# wavefront obj file written by wiregraph")
	_, _ = fmt.Fprintln(obj)
	_, _ = fmt.Fprintf(obj, "mtllib %s\n", mtlName)
	_, _ = fmt.Fprintln(obj)

	_, _ = fmt.Fprintln(mtl, "# wavefront mtl file written by wiregraph")

	// OBJ indices are 1-based and global across groups.
	offset := 1
	for i, a := range w.Actors() {
		material := fmt.Sprintf("mtl%d", i+1)

		_, _ = fmt.Fprintf(obj, "g grp%d\n", i+1)
		for _, p := range a.WorldPoints() {
			_, _ = fmt.Fprintf(obj, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		_, _ = fmt.Fprintf(obj, "usemtl %s\n", material)
		for _, l := range a.Graph().Lines {
			_, _ = fmt.Fprintf(obj, "l %d %d\n", l.U+offset, l.V+offset)
		}
		_, _ = fmt.Fprintln(obj)
		offset += a.Graph().PointCount()

		writeMaterial(mtl, material, a)
	}

	if err := obj.Flush(); err != nil {
		return err
	}
	return mtl.Flush()
}

func writeMaterial(mtl *bufio.Writer, name string, a *Actor) {
	r, g, b, alpha := colorComponents(a.Color)
	_, _ = fmt.Fprintf(mtl, "newmtl %s\n", name)
	_, _ = fmt.Fprintln(mtl, "Ka 0 0 0")
	_, _ = fmt.Fprintf(mtl, "Kd %g %g %g\n", r, g, b)
	_, _ = fmt.Fprintln(mtl, "Ks 0 0 0")
	_, _ = fmt.Fprintln(mtl, "Ns 1")
	_, _ = fmt.Fprintf(mtl, "d %g\n", alpha)
	_, _ = fmt.Fprintln(mtl, "illum 1")
	_, _ = fmt.Fprintln(mtl)
}
