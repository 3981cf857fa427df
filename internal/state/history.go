package state

import "PixelPad/internal/raster"

// MaxHistoryDepth caps the number of retained snapshots. Undo depth is
// therefore limited to 19 steps past the current state, which is an accepted
// product limit that keeps memory bounded.
const MaxHistoryDepth = 20

// History provides linear undo over a single buffer as a bounded stack of
// snapshots. Index 0 is the oldest retained state; the last entry always
// mirrors the buffer's current committed state. There is no redo.
type History struct {
	snaps []raster.Snapshot
}

// NewHistory creates a history seeded with the buffer's initial state, so
// undo can always return to it (until it is evicted by the depth cap).
func NewHistory(initial raster.Snapshot) *History {
	snaps := make([]raster.Snapshot, 1, MaxHistoryDepth)
	snaps[0] = initial
	return &History{snaps: snaps}
}

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.snaps) }

// CanUndo reports whether there is a prior state to return to.
func (h *History) CanUndo() bool { return len(h.snaps) > 1 }

// Push appends a committed state. When the stack exceeds MaxHistoryDepth the
// oldest snapshot is evicted.
func (h *History) Push(s raster.Snapshot) {
	h.snaps = append(h.snaps, s)
	if len(h.snaps) > MaxHistoryDepth {
		h.snaps = h.snaps[1:]
	}
}

// Undo discards the current state and returns the previous one to restore.
// With a single retained snapshot there is nothing to undo and ok is false.
func (h *History) Undo() (snap raster.Snapshot, ok bool) {
	if len(h.snaps) <= 1 {
		return raster.Snapshot{}, false
	}
	h.snaps = h.snaps[:len(h.snaps)-1]
	return h.snaps[len(h.snaps)-1], true
}
