package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/inkpost/backend/internal/model"
	"github.com/inkpost/backend/internal/service"
)

const authUserKey = "auth_user"

// bearerIdentity is the extraction core shared by the required and
// optional middlewares: read the Authorization header, require the
// exact "Bearer " scheme, verify the token.
func bearerIdentity(c *gin.Context, tokens *service.TokenService) (*model.AuthUser, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, false
	}

	user, err := tokens.Verify(token)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RequireAuth rejects the request unless a valid bearer token is
// presented. A missing header, a wrong scheme and a failed
// verification all collapse into the same 401 envelope, so the caller
// learns nothing about which check failed.
func RequireAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := bearerIdentity(c, tokens)
		if !ok {
			resp := model.NewError(401, "unauthorized")
			c.AbortWithStatusJSON(model.HTTPStatus(resp.Code), resp)
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid bearer token is
// presented and otherwise lets the request through without one; the
// handler decides what absence means.
func OptionalAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := bearerIdentity(c, tokens); ok {
			c.Set(authUserKey, user)
		}
		c.Next()
	}
}

// GetAuthUser returns the identity set by RequireAuth/OptionalAuth,
// or nil when the request is anonymous.
func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

// CORSMiddleware allows any origin; credentials stay disabled.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLogger logs one line per request with method, path, status
// and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
