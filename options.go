package schem

// SessionOption configures an EditSession during creation.
// Use functional options to customize session behavior.
//
// Example:
//
//	// Default session: unit view, no undo log, free dragging
//	s := schem.NewEditSession(obj)
//
//	// Wire editing with undo recording and manhattan constraints
//	s := schem.NewEditSession(obj,
//	    schem.WithView(view),
//	    schem.WithUndoLog(log),
//	    schem.WithManhattan(true))
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for EditSession creation.
type sessionOptions struct {
	view      *ViewContext
	undo      UndoLog
	manhattan bool
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		view: nil, // Will be set to a unit view if nil
		undo: nopUndo{},
	}
}

// WithView sets the view used to convert cursor positions and snap them
// to the grid.
func WithView(v *ViewContext) SessionOption {
	return func(o *sessionOptions) {
		o.view = v
	}
}

// WithUndoLog sets the undo log that receives edit records.
// A nil log discards records.
func WithUndoLog(u UndoLog) SessionOption {
	return func(o *sessionOptions) {
		if u == nil {
			u = nopUndo{}
		}
		o.undo = u
	}
}

// WithManhattan keeps dragged polygon vertices axis-aligned with their
// neighbours. New elements use strict manhattanization, so a single new
// segment snaps to horizontal or vertical.
func WithManhattan(enabled bool) SessionOption {
	return func(o *sessionOptions) {
		o.manhattan = enabled
	}
}
