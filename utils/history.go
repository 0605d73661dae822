package utils

// History tracks recent grid state hashes so a driver can notice when the
// board has gone static or fallen into a short cycle. Grids themselves are
// immutable snapshots, so the driver owns the history, not the grid.
type History struct {
	hashes []string
}

const historySize = 5

// Push records the hash of the latest generation, keeping only the most
// recent few.
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether the given state hash matches any of the last
// three recorded generations, i.e. the board is static or cycling with
// period 2 or 3.
func (h *History) Stagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Reset drops the recorded history, e.g. after a board restart.
func (h *History) Reset() {
	h.hashes = nil
}
