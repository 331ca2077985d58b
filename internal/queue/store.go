// Package queue holds the in-memory waiting line and the position
// renumbering rules that keep it consistent.
package queue

import (
	"slices"
	"sort"
	"sync"
	"time"

	"fila/internal/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("cliente não encontrado na posição especificada")

// Store is the single waiting line. All methods are safe for concurrent use;
// each one runs under the same exclusive lock.
type Store struct {
	mu       sync.Mutex
	entries  []*models.Entry
	revision uint64
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of arrival times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make([]*models.Entry, 0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every waiting customer ordered by position.
func (s *Store) List() []models.EntryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waiting()
}

// Get returns the waiting customer currently at position.
func (s *Store) Get(position int) (models.EntryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.waitingAt(position); e != nil {
		return e.View(), nil
	}
	return models.EntryView{}, errors.Wrapf(ErrNotFound, "position %d", position)
}

// Enqueue adds a customer to the line. Normal customers go to the back;
// priority customers go right after the last waiting priority customer,
// pushing everyone behind that point one place back.
func (s *Store) Enqueue(name string, class models.ServiceClass) models.Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &models.Entry{
		ID:        uuid.New(),
		Name:      name,
		Class:     class,
		Position:  s.waitingCount() + 1,
		ArrivedAt: s.arrival(),
	}

	if class == models.Priority {
		lastPriority := 0
		for _, e := range s.entries {
			if !e.Served && e.Class == models.Priority && e.Position > lastPriority {
				lastPriority = e.Position
			}
		}
		for _, e := range s.entries {
			if !e.Served && e.Position > lastPriority {
				e.Position++
			}
		}
		entry.Position = lastPriority + 1
	}

	s.entries = append(s.entries, entry)
	s.revision++
	return models.Change{Entry: *entry, Position: entry.Position, Revision: s.revision}
}

// Advance serves the customer at position 1 and moves everyone else one
// place forward. It reports false when nobody was waiting, in which case
// the returned change only carries the current revision.
func (s *Store) Advance() (models.Change, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var served *models.Entry
	for _, e := range s.entries {
		if e.Served {
			continue
		}
		if e.Position == 1 {
			e.Position = 0
			e.Served = true
			served = e
			continue
		}
		e.Position--
	}

	if served == nil {
		return models.Change{Revision: s.revision}, false
	}
	s.revision++
	return models.Change{Entry: *served, Position: 1, Revision: s.revision}, true
}

// Remove deletes the waiting customer at position and closes the gap.
func (s *Store) Remove(position int) (models.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.entries {
		if !e.Served && e.Position == position {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Change{}, errors.Wrapf(ErrNotFound, "position %d", position)
	}

	removed := *s.entries[idx]
	s.entries = slices.Delete(s.entries, idx, idx+1)
	for _, e := range s.entries {
		if !e.Served && e.Position > position {
			e.Position--
		}
	}
	s.revision++
	return models.Change{Entry: removed, Position: position, Revision: s.revision}, nil
}

// Stats counts waiting and served customers.
func (s *Store) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats()
}

// Snapshot returns the counters and the waiting customers as of the same revision.
func (s *Store) Snapshot() (models.Stats, []models.EntryView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats(), s.waiting()
}

func (s *Store) stats() models.Stats {
	stats := models.Stats{Revision: s.revision}
	for _, e := range s.entries {
		switch {
		case e.Served:
			stats.Served++
		case e.Class == models.Priority:
			stats.PriorityWaiting++
		default:
			stats.NormalWaiting++
		}
	}
	stats.Waiting = stats.PriorityWaiting + stats.NormalWaiting
	return stats
}

func (s *Store) waiting() []models.EntryView {
	views := make([]models.EntryView, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.Served {
			views = append(views, e.View())
		}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].Position < views[j].Position
	})
	return views
}

func (s *Store) waitingCount() int {
	n := 0
	for _, e := range s.entries {
		if !e.Served {
			n++
		}
	}
	return n
}

func (s *Store) waitingAt(position int) *models.Entry {
	for _, e := range s.entries {
		if !e.Served && e.Position == position {
			return e
		}
	}
	return nil
}

// arrival never goes backwards, even if the clock does.
func (s *Store) arrival() time.Time {
	at := s.now()
	if n := len(s.entries); n > 0 && at.Before(s.entries[n-1].ArrivedAt) {
		at = s.entries[n-1].ArrivedAt
	}
	return at
}
