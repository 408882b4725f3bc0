package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kestrelwing/raylang/pkg/math3d"
)

// LoadSMF reads a Simple Mesh Format file: one vertex ("v x y z") or
// face ("f i j k", 1-based) per line, blank and unrecognized lines
// ignored. The mesh must be triangular; malformed records are asset
// errors reported to the caller rather than panics.
func LoadSMF(path string, shading Shading) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh %q: %w", path, err)
	}
	defer f.Close()

	var vertices []math3d.Vec3
	var faces []Face

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			v, err := parseVertexLine(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			vertices = append(vertices, v)
		case strings.HasPrefix(line, "f "):
			face, err := parseFaceLine(line, len(vertices))
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mesh %q: %w", path, err)
	}

	return New(vertices, faces, shading), nil
}

func parseVertexLine(line string) (math3d.Vec3, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) != 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex record needs 3 components, got %d", len(fields))
	}
	comps := make([]float32, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("invalid vertex component %q: %w", f, err)
		}
		comps[i] = float32(v)
	}
	return math3d.V3(comps[0], comps[1], comps[2]), nil
}

func parseFaceLine(line string, vertexCount int) (Face, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) != 3 {
		return Face{}, fmt.Errorf("face record must be triangular, got %d indices", len(fields))
	}
	idx := make([]int, 3)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Face{}, fmt.Errorf("invalid face index %q: %w", f, err)
		}
		if v < 1 || v > vertexCount {
			return Face{}, fmt.Errorf("face index %d out of range [1,%d]", v, vertexCount)
		}
		idx[i] = v - 1
	}
	return NewFace(idx[0], idx[1], idx[2]), nil
}
