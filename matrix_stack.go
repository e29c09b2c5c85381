package schem

// MatrixStack models nested coordinate frames (object instance hierarchy).
// The stack always holds at least one matrix, the base frame.
//
// A MatrixStack is owned by a single draw or edit operation and discarded
// when that operation ends.
type MatrixStack struct {
	stack []Matrix
}

// NewMatrixStack creates a stack whose base frame is base.
func NewMatrixStack(base Matrix) *MatrixStack {
	return &MatrixStack{stack: []Matrix{base}}
}

// Top returns the current transform.
func (s *MatrixStack) Top() Matrix {
	return s.stack[len(s.stack)-1]
}

// Set replaces the current transform.
func (s *MatrixStack) Set(m Matrix) {
	s.stack[len(s.stack)-1] = m
}

// Depth returns the number of frames on the stack, including the base.
func (s *MatrixStack) Depth() int {
	return len(s.stack)
}

// Push duplicates the current transform.
func (s *MatrixStack) Push() {
	s.stack = append(s.stack, s.Top())
}

// Pop discards the current transform. Popping the base frame is a caller
// error; it is logged and leaves the stack unchanged.
func (s *MatrixStack) Pop() error {
	if len(s.stack) <= 1 {
		Logger().Warn("schem: pop on empty matrix stack")
		return ErrStackUnderflow
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// PreMultiply enters a child frame on the current transform.
func (s *MatrixStack) PreMultiply(pos Point, scale, rotation float64) {
	s.Set(s.Top().PreMultiply(pos, scale, rotation))
}

// PostMultiply appends a frame after the current transform.
func (s *MatrixStack) PostMultiply(pos Point, scale, rotation float64) {
	s.Set(s.Top().PostMultiply(pos, scale, rotation))
}
