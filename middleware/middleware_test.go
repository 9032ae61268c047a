package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/metacat/db"
	"github.com/dev-mohitbeniwal/metacat/middleware"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/util"
)

const testSecret = "console-secret"

type recordedUsers struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func (r *recordedUsers) SetCurrentUser(_ context.Context, sessionID string, user *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users == nil {
		r.users = make(map[string]*model.User)
	}
	r.users[sessionID] = user
}

func signToken(t *testing.T, secret string, claims middleware.ConsoleClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func identityRouter(secret string, users middleware.SessionUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity(secret))
	r.Use(middleware.BindSessionUser(users))
	r.GET("/whoami", func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{
			"id":        user.ID,
			"session":   util.GetSessionIDFromContext(c),
			"contextID": util.UserIDFromContext(c.Request.Context()),
		})
	})
	return r
}

func TestIdentity(t *testing.T) {
	claims := middleware.ConsoleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email:       "aaron@example.com",
		DisplayName: "Aaron",
	}

	t.Run("VerifiedToken_Success", func(t *testing.T) {
		users := &recordedUsers{}
		r := identityRouter(testSecret, users)
		token := signToken(t, testSecret, claims)

		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set(middleware.SessionHeader, "session-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"user-1","session":"session-1","contextID":"user-1"}`, w.Body.String())
		assert.Equal(t, "session-1", w.Header().Get(middleware.SessionHeader))

		require.Contains(t, users.users, "session-1")
		assert.Equal(t, &model.User{ID: "user-1", Name: "Aaron", Email: "aaron@example.com", Token: token}, users.users["session-1"])
	})

	t.Run("GeneratesSessionID", func(t *testing.T) {
		users := &recordedUsers{}
		r := identityRouter("", users)

		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "any-key", claims))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Header().Get(middleware.SessionHeader), 36)
		// nothing would reuse a cache keyed by a session the client never named
		assert.Empty(t, users.users)
	})

	t.Run("MissingToken", func(t *testing.T) {
		users := &recordedUsers{}
		r := identityRouter(testSecret, users)

		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, users.users)
	})

	t.Run("WrongSignature", func(t *testing.T) {
		r := identityRouter(testSecret, &recordedUsers{})

		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", claims))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		r := identityRouter(testSecret, &recordedUsers{})
		noSubject := claims
		noSubject.Subject = ""

		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, noSubject))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr(), DisableIndentity: true})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, db.UseClient(client, []byte("0123456789abcdef0123456789abcdef")))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(util.ContextSessionKey, c.GetHeader(middleware.SessionHeader))
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(util.ContextUserKey, &model.User{ID: id})
		}
	})
	r.Use(middleware.RateLimiter(2, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(user, session, addr string) int {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}
		if session != "" {
			req.Header.Set(middleware.SessionHeader, session)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("PerUser_AcrossSessions", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, call("u-1", "a", "10.0.0.1:1000"))
		assert.Equal(t, http.StatusNoContent, call("u-1", "b", "10.0.0.1:1000"))
		assert.Equal(t, http.StatusTooManyRequests, call("u-1", "c", "10.0.0.2:1000"))
		assert.Equal(t, http.StatusNoContent, call("u-2", "c", "10.0.0.1:1000"))
	})

	t.Run("Anonymous_ByClientIP", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, call("", "x", "10.0.1.1:1000"))
		assert.Equal(t, http.StatusNoContent, call("", "y", "10.0.1.1:2000"))
		assert.Equal(t, http.StatusTooManyRequests, call("", "z", "10.0.1.1:3000"))
		assert.Equal(t, http.StatusNoContent, call("", "z", "10.0.1.2:1000"))
	})
}
