package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notepod/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetUint(ContextUserID)})
	})
	return r
}

func doAuthGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsValidToken(t *testing.T) {
	r := newAuthRouter()

	token, err := jwt.Sign(42, time.Hour)
	require.NoError(t, err)

	w := doAuthGet(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":42}`, w.Body.String())
}

func TestAuthRejectsMissingOrBadToken(t *testing.T) {
	r := newAuthRouter()

	for _, header := range []string{"", "Bearer ", "Bearer not.a.token"} {
		w := doAuthGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "Authorization=%q", header)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	r := newAuthRouter()

	token, err := jwt.Sign(42, -time.Minute)
	require.NoError(t, err)

	w := doAuthGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
