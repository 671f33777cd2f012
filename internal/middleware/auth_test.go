package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"segura-mente/internal/config"
	"segura-mente/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 168}}
}

func newAuthTestRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email":    c.GetString(ContextEmailKey),
			"username": c.GetString(ContextUsernameKey),
		})
	})
	return router
}

func doAuthRequest(t *testing.T, router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	cfg := authTestConfig()
	router := newAuthTestRouter(cfg)

	token, err := utils.GenerateSessionToken("alice@ex.com", "alice_99", cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	recorder := doAuthRequest(t, router, "Bearer "+token)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "alice@ex.com", body["email"])
	assert.Equal(t, "alice_99", body["username"])
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := newAuthTestRouter(authTestConfig())

	tests := []struct {
		name          string
		authorization string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"bare scheme", "Bearer"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doAuthRequest(t, router, tt.authorization)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			var body utils.Response
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "Authentication token not provided", body.Message)
		})
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	cfg := authTestConfig()
	router := newAuthTestRouter(cfg)

	expired, err := utils.GenerateSessionToken("alice@ex.com", "alice_99", cfg.JWT.Secret, -time.Minute)
	require.NoError(t, err)

	foreign, err := utils.GenerateSessionToken("alice@ex.com", "alice_99", "another-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong signing secret", foreign},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doAuthRequest(t, router, "Bearer "+tt.token)
			assert.Equal(t, http.StatusForbidden, recorder.Code)

			var body utils.Response
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "Invalid or expired token", body.Message)
		})
	}
}
