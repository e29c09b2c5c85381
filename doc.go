// Package schem provides the 2D element geometry and interactive
// point-editing engine of a schematic editor.
//
// # Overview
//
// schem models the drawable elements of a schematic (arcs, polygons,
// cubic splines, composite paths, labels and object instances), computes
// their bounding boxes, answers hit-testing queries and drives
// interactive dragging of individual vertices, control points and arc
// parameters. Windowing, undo storage, file formats and rendering are
// external collaborators reached through small interfaces (UndoLog,
// Renderer) and explicit values (ViewContext).
//
// # Quick Start
//
//	obj := schem.NewObject("top")
//	wire := schem.NewPolygon(schem.Unclosed, schem.Pt(0, 0), schem.Pt(0, 0))
//
//	s := schem.NewEditSession(obj, schem.WithManhattan(true))
//	_ = s.BeginCreate(wire, 1)
//	_ = s.DragTo(schem.Pt(10, 7)) // wire now ends at (10, 0)
//	_ = s.Finish()
//
// # Coordinate System
//
// Model space is y-up with integer coordinates in the signed 16-bit range.
// Angles are in degrees; arc angles run counter-clockwise from +x, while
// placement rotations (Local, Instance.Rotation) turn clockwise.
// Device space, produced by ViewContext.CTM, is y-down.
//
// # Edit Cycles
//
// During an edit each element carries a Cycle listing the point indices
// under interactive control. Exactly one entry is the Reference anchor,
// and the flags EditX and EditY choose which axes follow the cursor.
// Paths keep their cycles on their parts; UpdatePath mirrors cycles across
// joints so connected parts move together.
//
// # Concurrency
//
// The engine is synchronous and single-threaded. Elements, cycles and
// matrix stacks are owned by one edit or draw operation at a time.
package schem
