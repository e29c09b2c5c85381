package schem

// Manhattanize keeps a wire axis-aligned while vertex cycle of poly is
// dragged to pos. For each neighbour of the dragged vertex whose own
// outer neighbour shares an axis value with it, the neighbour is pulled
// onto pos along that axis, so the adjoining segments stay horizontal or
// vertical. A cycle of -1 addresses the last vertex.
//
// A single-segment wire has no outer neighbour. With strict set the
// returned target is snapped onto the fixed neighbour's axis with the
// smaller delta, giving an axis-aligned segment that may not reach the
// cursor; without strict the segment follows the cursor freely. Multi-
// segment wires always reach the cursor exactly at the dragged vertex.
//
// Neighbours are modified in place. The returned point is the position
// the dragged vertex should take.
func Manhattanize(pos Point, poly *Polygon, cycle int, strict bool) Point {
	n := len(poly.Points)
	if n <= 1 {
		return pos
	}
	if cycle < 0 || cycle >= n {
		cycle = n - 1
	}
	closed := poly.Closed()

	// neighbour returns the index offset steps away from cycle, or -1 when
	// it runs off an open wire.
	neighbour := func(offset int) int {
		idx := cycle + offset
		if idx >= 0 && idx < n {
			return idx
		}
		if !closed {
			return -1
		}
		return ((idx % n) + n) % n
	}

	constrain := func(near, far int) {
		if near < 0 || near == cycle {
			return
		}
		np := &poly.Points[near]
		if far >= 0 && far != cycle && far != near {
			fp := poly.Points[far]
			if np.X == fp.X {
				np.Y = pos.Y
			}
			if np.Y == fp.Y {
				np.X = pos.X
			}
			return
		}
		if strict {
			dx := abs(np.X - pos.X)
			dy := abs(np.Y - pos.Y)
			if dy > dx {
				pos.X = np.X
			} else {
				pos.Y = np.Y
			}
		}
	}

	constrain(neighbour(-1), neighbour(-2))
	constrain(neighbour(1), neighbour(2))
	return pos
}
