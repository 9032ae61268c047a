// util/http_util.go
package util

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
)

// Context keys set by the identity middleware
const (
	ContextUserKey    = "currentUser"
	ContextSessionKey = "sessionID"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithValidation writes inline field errors
func RespondWithValidation(c *gin.Context, code int, verrs ValidationErrors) {
	logger.Info("Form rejected",
		zap.String("path", c.Request.URL.Path),
		zap.Int("fields", len(verrs)))
	c.JSON(code, gin.H{"error": "Validation failed", "fields": verrs})
}

// GetUserFromContext returns the caller identity, or nil for anonymous requests
func GetUserFromContext(c *gin.Context) *model.User {
	user, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	u, _ := user.(*model.User)
	return u
}

func GetSessionIDFromContext(c *gin.Context) string {
	return c.GetString(ContextSessionKey)
}

type userCtxKey struct{}

// ContextWithUser carries the caller identity into service calls
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserIDFromContext returns the caller's id, or "" when anonymous
func UserIDFromContext(ctx context.Context) string {
	if user, _ := ctx.Value(userCtxKey{}).(*model.User); user != nil {
		return user.ID
	}
	return ""
}
