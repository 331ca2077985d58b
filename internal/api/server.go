package api

import (
	"context"
	"net/http"
	"time"

	"fila/internal/api/middleware"
	"fila/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	engine *gin.Engine
	logger *logrus.Logger
}

func New(appEnv config.AppEnv, logger *logrus.Logger) *Server {
	if appEnv == config.ProductionEnv {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	return &Server{
		engine: r,
		logger: logger,
	}
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Infof("rest server starting at: %s", address)
	srvError := make(chan error, 1)
	go func() {
		srvError <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("rest server is shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-srvError:
		return err
	}
}
