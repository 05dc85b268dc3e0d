package middleware

import (
	. "todos/internal/adapter/http/helper"
	"todos/internal/core/domain"
	"todos/internal/core/port"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current-user"

// CredentialsMiddleware authenticates every request on the protected
// group through HTTP Basic credentials. There are no sessions or tokens;
// each request resolves its user identity through the auth service.
func CredentialsMiddleware(svc port.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()

		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="todos"`)
			SendUnauthorizedError(c, "Credentials required")
			c.Abort()
			return
		}

		user, err := svc.Login(c.Request.Context(), username, password)

		if err != nil {
			SendUnauthorizedError(c, "Invalid username or password")
			c.Abort()
			return
		}

		c.Set(currentUserKey, *user)
		c.Next()
	}
}

// CurrentUser returns the identity bound to the request by
// CredentialsMiddleware.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(currentUserKey)

	if !ok {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)

	return user, ok
}
