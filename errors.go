package schem

import "errors"

// Errors returned by the geometry engine. All of them are locally
// recoverable: the caller drops the change and keeps the prior state.
var (
	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant is (nearly) zero.
	ErrSingularMatrix = errors.New("schem: singular transformation matrix")

	// ErrStackUnderflow is returned when popping the base of a MatrixStack.
	ErrStackUnderflow = errors.New("schem: matrix stack underflow")

	// ErrCoordOverflow is returned when a coordinate would leave the
	// 16-bit coordinate range.
	ErrCoordOverflow = errors.New("schem: coordinate out of range")

	// ErrInvalidPathPart is returned when a Path is given a part that is
	// neither a polygon nor a spline.
	ErrInvalidPathPart = errors.New("schem: path parts must be polygons or splines")

	// ErrNoCycle is returned when an edit operation needs a point cycle
	// and the element has none.
	ErrNoCycle = errors.New("schem: element has no edit cycle")

	// ErrNoEdit is returned by EditSession methods called outside an edit.
	ErrNoEdit = errors.New("schem: no edit in progress")

	// ErrDegenerate reports that a finished element had no visible extent
	// and was discarded.
	ErrDegenerate = errors.New("schem: degenerate element discarded")

	// ErrIndexOutOfRange is returned for container indices that do not
	// address an element.
	ErrIndexOutOfRange = errors.New("schem: element index out of range")
)
