package api

import (
	"fila/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupAPIRoutes registers the queue API, the websocket feed and the docs.
//
//	@title			Fila de atendimento
//	@version		1.0.0
//	@description	Fila única com atendimento normal e prioritário
//	@BasePath		/
func (s *Server) SetupAPIRoutes(queueHandler *handlers.QueueHandler, wsHandler gin.HandlerFunc) {
	r := s.engine

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", handlers.Health)

	fila := r.Group("/fila")
	{
		fila.GET("", queueHandler.List)
		fila.POST("", queueHandler.Enqueue)
		fila.PUT("", queueHandler.Advance)
		fila.GET("/:id", queueHandler.Get)
		fila.DELETE("/:id", queueHandler.Remove)
	}

	r.GET("/status/fila", queueHandler.Status)
	r.GET("/ws/fila", wsHandler)
}
