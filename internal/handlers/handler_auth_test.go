package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/handlers"
	"github.com/SscSPs/storefront_sim/internal/platform/config"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func newAuthRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterAuthRoutes(r, cfg)
	return r
}

func postSession(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/session", stringsReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSession(t *testing.T) {
	hash, err := utils.HashOperatorKey("open-sesame")
	require.NoError(t, err)
	cfg := &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "storefront-test",
		OperatorKeyHash:   hash,
	}
	r := newAuthRouter(t, cfg)

	t.Run("valid key issues an operator token", func(t *testing.T) {
		w := postSession(r, `{"operatorID":"op-1","operatorKey":"open-sesame"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var res dto.SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		claims, err := utils.ParseSessionToken(res.Token, testJWTSecret)
		require.NoError(t, err)
		assert.Equal(t, "op-1", claims.Subject)
		assert.Equal(t, utils.OperatorRole, claims.Role)
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		w := postSession(r, `{"operatorID":"op-1","operatorKey":"guess"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postSession(r, `{"operatorID":"op-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateSession_DevModeWithoutHash(t *testing.T) {
	r := newAuthRouter(t, &config.Config{JWTSecret: testJWTSecret, JWTExpiryDuration: time.Hour})

	w := postSession(r, `{"operatorID":"dev","operatorKey":"anything"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
