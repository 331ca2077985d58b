// Package events describes the notifications emitted when the line changes
// and fans them out to every configured publisher.
package events

import (
	"context"
	"time"

	"fila/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Type string

const (
	CustomerJoined  Type = "customer_joined"
	CustomerServed  Type = "customer_served"
	CustomerRemoved Type = "customer_removed"
	AdvancedEmpty   Type = "queue_advanced_empty"
	QueueSnapshot   Type = "queue_snapshot"
)

// Event is the message sent to websocket subscribers and the redis channel.
type Event struct {
	Type     Type                `json:"event_type"`
	Revision uint64              `json:"revisao"`
	TicketID *uuid.UUID          `json:"ticket_id,omitempty"`
	Position int                 `json:"posicao,omitempty"`
	Name     string              `json:"nome,omitempty"`
	Class    models.ServiceClass `json:"tipo_atendimento,omitempty"`
	At       time.Time           `json:"at"`
	Data     interface{}         `json:"data,omitempty"`
}

// ForEntry builds an event describing something that happened to entry.
// position is the place the entry held when the event occurred.
func ForEntry(t Type, revision uint64, entry models.Entry, position int) Event {
	id := entry.ID
	return Event{
		Type:     t,
		Revision: revision,
		TicketID: &id,
		Position: position,
		Name:     entry.Name,
		Class:    entry.Class,
		At:       time.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Fanout delivers each event to all of its publishers. Failures are logged
// and never returned, so a broken subscriber cannot fail a queue operation.
type Fanout struct {
	publishers []Publisher
	logger     *logrus.Logger
}

func NewFanout(logger *logrus.Logger, publishers ...Publisher) *Fanout {
	return &Fanout{
		publishers: publishers,
		logger:     logger,
	}
}

// Add registers another publisher. It must be called before the first Publish.
func (f *Fanout) Add(p Publisher) {
	f.publishers = append(f.publishers, p)
}

func (f *Fanout) Publish(ctx context.Context, ev Event) error {
	for _, p := range f.publishers {
		if err := p.Publish(ctx, ev); err != nil {
			f.logger.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
				"event_type": ev.Type,
				"revision":   ev.Revision,
			}).Warn("failed to publish queue event")
		}
	}
	return nil
}
