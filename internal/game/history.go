package game

import "fmt"

type HistoryEntry struct {
	Day     int
	Message string
}

func (e HistoryEntry) String() string {
	return fmt.Sprintf("Day %d: %s", e.Day, e.Message)
}

// History is an append-only log of completed activities.
type History struct {
	entries []HistoryEntry
}

func (h *History) Append(day int, message string) {
	h.entries = append(h.entries, HistoryEntry{Day: day, Message: message})
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy in insertion order.
func (h *History) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

func (h *History) Lines() []string {
	lines := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		lines = append(lines, e.String())
	}
	return lines
}
