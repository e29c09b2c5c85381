package schem

// UndoKind names the change being recorded.
type UndoKind uint8

// Undo kinds.
const (
	UndoEdit UndoKind = iota
	UndoCreate
	UndoDelete
	UndoRotate
	UndoFlip
	UndoRescale
)

// String returns the undo kind name.
func (k UndoKind) String() string {
	switch k {
	case UndoEdit:
		return "edit"
	case UndoCreate:
		return "create"
	case UndoDelete:
		return "delete"
	case UndoRotate:
		return "rotate"
	case UndoFlip:
		return "flip"
	case UndoRescale:
		return "rescale"
	}
	return "unknown"
}

// UndoPhase tells the undo log where in an operation the record falls.
type UndoPhase uint8

// Undo phases.
const (
	// PhaseBegin is recorded when a cycle edit starts.
	PhaseBegin UndoPhase = iota
	// PhaseEnd is recorded when a drag or transform is committed.
	PhaseEnd
)

// UndoLog receives undo records. The geometry engine only reports changes;
// storing and replaying them belongs to the caller.
type UndoLog interface {
	// RegisterForUndo is called before a change is committed. prev is a
	// copy of the element as it was, or nil for a creation.
	RegisterForUndo(kind UndoKind, phase UndoPhase, prev Element)
}

// UndoRecord is one entry captured by UndoRecorder.
type UndoRecord struct {
	Kind  UndoKind
	Phase UndoPhase
	Prev  Element
}

// UndoRecorder is an UndoLog that keeps every record in memory.
type UndoRecorder struct {
	Records []UndoRecord
}

// RegisterForUndo implements UndoLog.
func (r *UndoRecorder) RegisterForUndo(kind UndoKind, phase UndoPhase, prev Element) {
	r.Records = append(r.Records, UndoRecord{Kind: kind, Phase: phase, Prev: prev})
}

// nopUndo discards undo records.
type nopUndo struct{}

func (nopUndo) RegisterForUndo(UndoKind, UndoPhase, Element) {}
