package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/backend/internal/config"
	"github.com/inkpost/backend/internal/model"
	"github.com/inkpost/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testTokens(t *testing.T) *service.TokenService {
	t.Helper()
	return service.NewTokenService(config.AuthConfig{
		JWTSecret:      "test-secret",
		ExpirationDays: 1,
	})
}

// newAuthTestRouter mounts one required and one optional route that
// both echo whatever identity the middleware attached.
func newAuthTestRouter(tokens *service.TokenService) *gin.Engine {
	router := gin.New()

	echo := func(c *gin.Context) {
		if user := GetAuthUser(c); user != nil {
			c.JSON(http.StatusOK, model.NewSuccess(user.Username))
			return
		}
		c.JSON(http.StatusOK, model.NewSuccess(nil))
	}

	router.GET("/required", RequireAuth(tokens), echo)
	router.GET("/optional", OptionalAuth(tokens), echo)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path, authHeader string) (*httptest.ResponseRecorder, model.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	tokens := testTokens(t)
	router := newAuthTestRouter(tokens)

	token, err := tokens.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	rec, resp := doRequest(t, router, "/required", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "alice", resp.Data)
}

func TestRequireAuthRejections(t *testing.T) {
	tokens := testTokens(t)
	router := newAuthTestRouter(tokens)

	token, err := tokens.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + token},
		{"lowercase scheme", "bearer " + token},
		{"no token after scheme", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, router, "/required", tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, 401, resp.Code)
			assert.Equal(t, "unauthorized", resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestOptionalAuthAttachesIdentityWhenPresent(t *testing.T) {
	tokens := testTokens(t)
	router := newAuthTestRouter(tokens)

	token, err := tokens.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	rec, resp := doRequest(t, router, "/optional", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", resp.Data)
}

func TestOptionalAuthContinuesWithoutIdentity(t *testing.T) {
	tokens := testTokens(t)
	router := newAuthTestRouter(tokens)

	for _, header := range []string{"", "Bearer not.a.token"} {
		rec, resp := doRequest(t, router, "/optional", header)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 200, resp.Code)
		assert.Nil(t, resp.Data)
	}
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, preflight)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
