package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/infrastructure/memory"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

type authFixture struct {
	resolver *application.IdentityResolver
	jwt      *helpers.JWTManager
	user     *entity.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	repo := memory.NewUserRepository()
	u := &entity.User{Email: "a@b.com", PasswordHash: "x", Name: "A"}
	require.NoError(t, repo.Insert(context.Background(), u))
	jwt, err := helpers.NewJWTManager("test-secret", "HS256", time.Minute, time.Hour)
	require.NoError(t, err)
	return &authFixture{resolver: application.NewIdentityResolver(repo, jwt, nil), jwt: jwt, user: u}
}

func (f *authFixture) router(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/x", mw, func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, u.ID)
	})
	return r
}

func do(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	f := newAuthFixture(t)
	r := f.router(RequireAuth(f.resolver))
	access, _, err := f.jwt.GenerateAccessToken(f.user.ID)
	require.NoError(t, err)
	refresh, _, err := f.jwt.GenerateRefreshToken(f.user.ID)
	require.NoError(t, err)

	t.Run("valid bearer", func(t *testing.T) {
		w := do(r, "Bearer "+access)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, f.user.ID, w.Body.String())
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		w := do(r, "bearer "+access)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic " + access,
		"no token":       "Bearer ",
		"refresh token":  "Bearer " + refresh,
		"garbage":        "Bearer abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			w := do(r, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			assert.Contains(t, w.Body.String(), "could not validate credentials")
			assert.NotContains(t, w.Body.String(), f.user.ID)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	f := newAuthFixture(t)
	r := f.router(OptionalAuth(f.resolver))
	access, _, err := f.jwt.GenerateAccessToken(f.user.ID)
	require.NoError(t, err)

	w := do(r, "Bearer "+access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, f.user.ID, w.Body.String())

	for _, header := range []string{"", "Bearer nope", "Token " + access} {
		w := do(r, header)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	}
}

func TestRequestIDAndRealIP(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(), RealIP(true))
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id")+"|"+c.GetString("real_ip"))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id+"|203.0.113.7", w.Body.String())
}

func TestRealIP_UntrustedIgnoresHeaders(t *testing.T) {
	r := gin.New()
	r.Use(RealIP(false))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("CF-Connecting-IP", "203.0.113.7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "203.0.113.7", w.Body.String())
}

func TestRequestLogger_OmitsQueryAndHeaders(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x?token=secret-token", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"path":"/x"`)
	assert.Contains(t, out, `"status":204`)
	assert.NotContains(t, out, "secret-token")
}
