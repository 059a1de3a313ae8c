package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
	"github.com/UmerAzizGujjar/portfolio/pkg/auth"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

const (
	GinContextKeyUserID = "userID"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)

		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userIDUUID, ok := userID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userIDUUID, true
}

// ErrorMiddleware maps errors pushed via c.Error to HTTP responses. Domain
// errors carry their own status; anything else surfaces as a 500 with the
// message included.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, zap.String("path", c.Request.URL.Path))
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		c.JSON(status, gin.H{"error": "internal server error", "message": err.Error()})
	}
}

// RateLimit enforces `limit` requests per `window` per client IP using a
// Redis counter. Fails open: with no Redis, or on Redis errors, requests pass.
func RateLimit(rdb *redis.Client, resource string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rl:%s:ip:%s", resource, c.ClientIP())

		cnt, err := rdb.Incr(context.Background(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if cnt == 1 {
			rdb.Expire(context.Background(), key, window)
		}
		if cnt > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
