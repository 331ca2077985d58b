package command

import (
	"context"
	"fmt"

	"fila/internal/api"
	"fila/internal/config"
	"fila/internal/events"
	"fila/internal/handlers"
	"fila/internal/queue"
	"fila/internal/storage"
	"fila/internal/tasks"
	"fila/internal/ws"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the queue HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.main(ctx, cfg)
		},
	}
}

func (cmd Server) main(ctx context.Context, cfg *config.Config) error {
	store := queue.NewStore()

	hub := ws.NewHub(cmd.Logger)
	go hub.Run(ctx)

	publisher := events.NewFanout(cmd.Logger, hub)

	if cfg.Redis.Addr != "" {
		redisClient, err := storage.NewRedisClient(ctx, cfg.Redis, cmd.Logger)
		if err != nil {
			return errors.Wrap(err, "server : failed to connect to redis")
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				cmd.Logger.WithError(err).Error("server : failed to close redis")
			}
		}()
		publisher.Add(storage.NewRedisPublisher(redisClient, cfg.Redis.Channel))
	}

	if cfg.ReportSchedule != config.ReportOff {
		scheduler, err := tasks.InitScheduler(cfg.ReportSchedule, tasks.NewReporter(store, publisher, cmd.Logger), cmd.Logger)
		if err != nil {
			return errors.Wrap(err, "server : failed to start reporter")
		}
		defer func() {
			<-scheduler.Stop().Done()
		}()
	}

	queueHandler := handlers.NewQueueHandler(store, publisher, cmd.Logger)

	server := api.New(cfg.AppEnv, cmd.Logger)
	server.SetupAPIRoutes(queueHandler, hub.QueueWebSocketHandler)

	return server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port))
}
