package match

// history is the undo stack: deep snapshots of the match state taken
// immediately before each point transaction. It is owned by the
// Controller and scoped to the match's lifetime.
type history struct {
	snapshots []*State
}

// push records a deep copy of s.
func (h *history) push(s *State) {
	h.snapshots = append(h.snapshots, s.Clone())
}

// pop removes and returns the most recent snapshot.
func (h *history) pop() (*State, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	top := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return top, true
}

// discard drops the most recent snapshot without returning it. Used
// when a point transaction is aborted before resolution.
func (h *history) discard() {
	if len(h.snapshots) > 0 {
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
	}
}

// depth returns the number of stored snapshots.
func (h *history) depth() int {
	return len(h.snapshots)
}
