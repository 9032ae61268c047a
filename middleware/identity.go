// middleware/identity.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/metacat/dao"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/util"
)

// SessionHeader carries the console session id in both directions
const SessionHeader = "X-Session-ID"

// ConsoleClaims are the claims read from the catalog-issued bearer token
type ConsoleClaims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// SessionUsers receives the identity seen on each request
type SessionUsers interface {
	SetCurrentUser(ctx context.Context, sessionID string, user *model.User)
}

// sessionIssuedKey marks requests whose session id was generated by the server
const sessionIssuedKey = "sessionIssued"

// Identity resolves the session and the caller from each request.
// With an empty secret the token is decoded without verification and the
// catalog stays the authority on its validity. No session state is touched here;
// BindSessionUser does that once the request has passed the rate limiter.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Set(sessionIssuedKey, true)
		}
		c.Set(util.ContextSessionKey, sessionID)
		c.Header(SessionHeader, sessionID)

		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			logger.Warn("No Authorization token provided", zap.String("sessionID", sessionID))
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", metacat_errors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString, secret)
		if err != nil {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
			c.Abort()
			return
		}

		user := &model.User{
			ID:    claims.Subject,
			Name:  claims.DisplayName,
			Email: claims.Email,
			Token: tokenString,
		}
		if user.Name == "" {
			user.Name = claims.Name
		}
		c.Set(util.ContextUserKey, user)

		ctx := dao.WithToken(util.ContextWithUser(c.Request.Context(), user), tokenString)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// BindSessionUser hands the caller to the session's permission cache.
// Sessions the client did not name are skipped: nothing would reuse their cache.
func BindSessionUser(users SessionUsers) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil || c.GetBool(sessionIssuedKey) {
			c.Next()
			return
		}
		users.SetCurrentUser(c.Request.Context(), util.GetSessionIDFromContext(c), user)
		c.Next()
	}
}

func parseToken(tokenString, secret string) (*ConsoleClaims, error) {
	claims := &ConsoleClaims{}
	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			logger.Error("Error parsing token", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", metacat_errors.ErrUnauthorized, err)
		}
	} else {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			logger.Error("The token is invalid", zap.Error(err))
			return nil, fmt.Errorf("%w: invalid token", metacat_errors.ErrUnauthorized)
		}
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", metacat_errors.ErrUnauthorized)
	}
	return claims, nil
}
