package wiregraph

import (
	"bufio"
	"io"
	"log"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const maxLineLength = 1024 * 1024

// ReadVertices loads the vertex file at fileName. A file that cannot be
// opened is reported and yields no vertices.
func ReadVertices(fileName string) []Vertex {
	file, err := os.Open(fileName)
	if err != nil {
		log.Printf("Could not open vertex file %s: %v", fileName, err)
		return nil
	}
	defer file.Close()

	return ParseVertices(file)
}

// ParseVertices reads one vertex per line. Decimal numbers are taken from
// the start of the line until something that does not start one. Two
// numbers give a point on the z=0 plane, three or more give x, y, z and
// the rest are ignored. Any other line is skipped.
func ParseVertices(reader io.Reader) []Vertex {
	var vertices []Vertex

	scanner := newLineScanner(reader)
	for scanner.Scan() {
		vals := leadingFloats(scanner.Text())
		switch {
		case len(vals) == 2:
			vertices = append(vertices, NewVertex(vals[0], vals[1], 0.0))
		case len(vals) >= 3:
			vertices = append(vertices, NewVertex(vals[0], vals[1], vals[2]))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Error reading vertices: %v", err)
	}

	return vertices
}

// ReadEdges loads the edge file at fileName. A file that cannot be
// opened is reported and yields no edges.
func ReadEdges(fileName string) []Edge {
	file, err := os.Open(fileName)
	if err != nil {
		log.Printf("Could not open edge file %s: %v", fileName, err)
		return nil
	}
	defer file.Close()

	return ParseEdges(file)
}

// ParseEdges reads one edge per line. A line must hold exactly two
// integers, anything else is skipped. Indices are not range checked here.
func ParseEdges(reader io.Reader) []Edge {
	var edges []Edge

	scanner := newLineScanner(reader)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) != 2 {
			continue
		}
		u, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		edges = append(edges, Edge{U: u, V: v})
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Error reading edges: %v", err)
	}

	return edges
}

func newLineScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return scanner
}

// decimalPrefix matches a finite decimal number at the start of a string.
// nan, inf and hex spellings never match.
var decimalPrefix = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// leadingFloats reads numbers from the start of line. A number may be
// followed directly by other text: "3x" gives 3, and the x ends the scan.
// Values that overflow a float64 end the scan too.
func leadingFloats(line string) []float64 {
	var vals []float64
	rest := line
	for {
		rest = strings.TrimLeft(rest, " \t\r\v\f")
		m := decimalPrefix.FindString(rest)
		if m == "" {
			break
		}
		val, err := strconv.ParseFloat(m, 64)
		if err != nil || math.IsInf(val, 0) {
			break
		}
		vals = append(vals, val)
		rest = rest[len(m):]
	}
	return vals
}
