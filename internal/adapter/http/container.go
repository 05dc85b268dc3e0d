package http

import (
	"todos/internal/adapter/http/handler"
	"todos/internal/adapter/http/middleware"
	"todos/internal/adapter/telemetry"
	"todos/internal/core/port"
	"todos/internal/core/service"

	"github.com/gin-gonic/gin"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	AuthService port.AuthService

	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
	AuthGuard   gin.HandlerFunc
}

func NewContainer(userRepo port.UserRepository, todoRepo port.TodoRepository, metrics *telemetry.AppMetrics) *Container {
	authSvc := service.NewAuthService(userRepo)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		AuthService: authSvc,

		AuthHandler: handler.NewAuthHandler(authSvc, metrics),
		TodoHandler: handler.NewTodoHandler(todoRepo, metrics),
		AuthGuard:   middleware.CredentialsMiddleware(authSvc),
	}
}
