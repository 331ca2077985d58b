package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxNameLength is the longest customer name accepted, in runes.
const MaxNameLength = 20

// Entry is one customer's record in the waiting line.
type Entry struct {
	ID        uuid.UUID    // Ticket id, used only to correlate events
	Name      string       // Customer name, at most MaxNameLength runes
	Class     ServiceClass // Normal or Priority
	Position  int          // Current place in line; 0 once served
	ArrivedAt time.Time    // Set on enqueue, never changed
	Served    bool         // Set by advance, exactly once
}

// View returns the public projection of the entry.
func (e Entry) View() EntryView {
	return EntryView{
		Position:  e.Position,
		Name:      e.Name,
		ArrivedAt: e.ArrivedAt,
	}
}

// EntryView is what the API exposes for a waiting customer.
type EntryView struct {
	Position  int       `json:"posicao" example:"1"`
	Name      string    `json:"nome" example:"Maria"`
	ArrivedAt time.Time `json:"data_chegada"`
}

// Change describes one mutation of the line: the entry it concerned, the
// position the entry held at that moment and the resulting revision.
type Change struct {
	Entry    Entry
	Position int
	Revision uint64
}
