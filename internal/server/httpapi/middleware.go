package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/dmitrijs2005/candidatetracker/internal/server/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// RequestLogger logs one line per request, at warn for 4xx and error for 5xx.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case status >= 500:
			logger.Error("HTTP Request", fields...)
		case status >= 400:
			logger.Warn("HTTP Request", fields...)
		default:
			logger.Info("HTTP Request", fields...)
		}
	}
}

// Recovery turns a handler panic into a logged 500.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.Stack("stacktrace"),
				)
				detail(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

// Authenticated requires a valid bearer token and stores its claims.
func Authenticated(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			detail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		cl, err := users.Authenticate(token)
		if err != nil {
			detail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		c.Set(claimsKey, cl)
		c.Next()
	}
}

// RequireRole lets only the given role through. It must follow Authenticated.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl := claims(c)
		if cl == nil || cl.Role != role {
			detail(c, http.StatusForbidden, "Not authorized")
			return
		}
		c.Next()
	}
}

func claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	cl, _ := v.(*auth.Claims)
	return cl
}
