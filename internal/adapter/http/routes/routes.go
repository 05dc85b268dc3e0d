package routes

import (
	"net/http"

	"todos/internal/adapter/http/handler"
	"todos/internal/adapter/http/middleware"
	"todos/internal/adapter/telemetry"
	"todos/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
	AuthGuard   gin.HandlerFunc
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, registry *prometheus.Registry, log *logger.Logger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(otelgin.Middleware("todos"))
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.MetricsMiddleware(metrics))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	setupPublicRoutes(router, handlers.AuthHandler)
	setupProtectedRoutes(router, handlers.TodoHandler, handlers.AuthGuard)

	return router
}

func setupPublicRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	public := router.Group("/")
	{
		public.POST("/signup", authHandler.Register)
		public.POST("/auth", authHandler.Login)
	}
}

func setupProtectedRoutes(router *gin.Engine, todoHandler *handler.TodoHandler, guard gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(guard)
	{
		protected.GET("/todos", todoHandler.ListTodos)
		protected.POST("/todos", todoHandler.CreateTodo)
		protected.PUT("/todos/:id", todoHandler.UpdateTodo)
		protected.DELETE("/todos/:id", todoHandler.DeleteTodo)
	}
}
