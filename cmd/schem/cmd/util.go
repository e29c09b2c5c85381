package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/schem"
	"github.com/gogpu/schem/internal/scene"
)

// loadObject loads a scene file and returns the object selected by
// --object.
func loadObject(path string) (*scene.Scene, *schem.Object, error) {
	s, err := scene.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading scene: %w", err)
	}
	obj := s.Top()
	if objectName != "" {
		var ok bool
		if obj, ok = s.Object(objectName); !ok {
			return nil, nil, fmt.Errorf("%s: no object named %q", path, objectName)
		}
	}
	if obj == nil {
		return nil, nil, fmt.Errorf("%s: no objects", path)
	}
	obj.ExactBBox = cfg.ExactBBox
	return s, obj, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (schem.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return schem.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return schem.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return schem.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return schem.Pt(x, y), nil
}

var kindNames = map[string]schem.Kind{
	"all":      schem.KindAll,
	"arc":      schem.KindArc,
	"polygon":  schem.KindPolygon,
	"spline":   schem.KindSpline,
	"path":     schem.KindPath,
	"label":    schem.KindLabel,
	"instance": schem.KindInstance,
}

// parseKinds parses a comma-separated list of element kinds.
func parseKinds(s string) (schem.Kind, error) {
	var k schem.Kind
	for _, name := range strings.Split(s, ",") {
		v, ok := kindNames[strings.TrimSpace(name)]
		if !ok {
			return 0, fmt.Errorf("unknown element kind %q", name)
		}
		k |= v
	}
	return k, nil
}

func formatBBox(b schem.BBox) string {
	ur := b.UpperRight()
	return fmt.Sprintf("(%d,%d)-(%d,%d) %dx%d", b.LowerLeft.X, b.LowerLeft.Y, ur.X, ur.Y, b.Width, b.Height)
}
