package handler

import (
	"errors"
	"log/slog"
	"net/http"

	. "todos/internal/adapter/http/helper"
	. "todos/internal/adapter/http/validation"
	"todos/internal/adapter/telemetry"
	"todos/internal/core/domain"
	"todos/internal/core/model/request"
	"todos/internal/core/model/response"
	"todos/internal/core/port"
	"todos/internal/core/util"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc     port.AuthService
	metrics *telemetry.AppMetrics
}

func NewAuthHandler(svc port.AuthService, metrics *telemetry.AppMetrics) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		metrics: metrics,
	}
}

func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.SignUpRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Register(ctx, &params)

	if err != nil {
		slog.Error("Auth#Register", "error", err)

		// The registration path names the taken username so the caller
		// can correct it; the login path never does.
		if errors.Is(err, domain.ErrConflict) {
			SendConflictError(c, "username", err.Error())
			return
		}

		SendBadRequestError(c, "registration", err.Error())
		return
	}

	a.metrics.RecordUserOperation("register")

	SendSuccess(c, http.StatusCreated, userResponse(user))
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.LoginRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Login(ctx, params.Username, params.Password)

	if err != nil {
		SendUnauthorizedError(c, "Invalid username or password")
		return
	}

	a.metrics.RecordUserOperation("login")

	SendSuccess(c, http.StatusOK, userResponse(user))
}

func userResponse(user *domain.User) response.UserResponse {
	return response.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
	}
}
