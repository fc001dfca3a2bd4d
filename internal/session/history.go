package session

import "colorpicky/internal/colors"

// HistorySize is the number of captured readings kept.
const HistorySize = 10

// Slot is one history entry. Valid is false for an empty slot.
type Slot struct {
	Color colors.NamedColor
	Valid bool
}

// History holds captured readings, newest at index 0.
type History [HistorySize]Slot

// Push inserts c at the front. When all slots are used the oldest entry is dropped.
func (h *History) Push(c colors.NamedColor) {
	copy(h[1:], h[:HistorySize-1])
	h[0] = Slot{Color: c, Valid: true}
}

// Clear empties every slot.
func (h *History) Clear() {
	*h = History{}
}

// Len returns the number of valid slots.
func (h History) Len() int {
	n := 0
	for _, s := range h {
		if s.Valid {
			n++
		}
	}
	return n
}

// At returns slot i. ok is false for an empty or out-of-range slot.
func (h History) At(i int) (c colors.NamedColor, ok bool) {
	if i < 0 || i >= HistorySize || !h[i].Valid {
		return colors.NamedColor{}, false
	}
	return h[i].Color, true
}
