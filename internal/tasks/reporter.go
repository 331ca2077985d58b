package tasks

import (
	"context"
	"time"

	"fila/internal/events"
	"fila/internal/models"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const reportTimeout = 5 * time.Second

type queueReader interface {
	Snapshot() (models.Stats, []models.EntryView)
}

// Reporter periodically logs the state of the line and publishes a snapshot
// so that display boards resynchronise even if they missed an event.
type Reporter struct {
	store     queueReader
	publisher events.Publisher
	logger    *logrus.Logger
}

func NewReporter(store queueReader, publisher events.Publisher, logger *logrus.Logger) *Reporter {
	return &Reporter{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// Run takes one snapshot.
func (r *Reporter) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	stats, waiting := r.store.Snapshot()

	r.logger.WithFields(logrus.Fields{
		"waiting":          stats.Waiting,
		"priority_waiting": stats.PriorityWaiting,
		"normal_waiting":   stats.NormalWaiting,
		"served":           stats.Served,
		"revision":         stats.Revision,
	}).Info("queue report")

	ev := events.Event{
		Type:     events.QueueSnapshot,
		Revision: stats.Revision,
		At:       time.Now(),
		Data:     waiting,
	}
	if err := r.publisher.Publish(ctx, ev); err != nil {
		r.logger.WithError(err).Warn("failed to publish queue snapshot")
	}
}

// InitScheduler starts a cron scheduler (with seconds) running the reporter on schedule.
func InitScheduler(schedule string, reporter *Reporter, logger *logrus.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(schedule, reporter.Run); err != nil {
		return nil, errors.Wrapf(err, "tasks: invalid report schedule %q", schedule)
	}

	c.Start()
	logger.Infof("queue reporter scheduled: %s", schedule)
	return c, nil
}
