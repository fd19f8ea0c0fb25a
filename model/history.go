package model

const historySize = 5

// History remembers hashes of recent boards for cycle detection
type History struct {
	hashes []string
}

// Record adds the board's state to the history, keeping the last few entries
func (h *History) Record(b *Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether b repeats one of the last three recorded states,
// i.e. the board is static or cycling with a period of at most 3
func (h *History) IsStagnant(b *Board) bool {
	current := b.Hash()
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
