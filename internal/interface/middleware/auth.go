package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/response"
)

const CtxUserKey = "user"

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Unauthorized aborts with 401 and a Bearer challenge.
func Unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error[any](c, http.StatusUnauthorized, application.ErrUnauthorized.Error(), nil).Abort(c)
}

// RequireAuth resolves the bearer access token and stores the user in the
// Gin context under CtxUserKey. Anything short of a live user is a 401.
func RequireAuth(resolver *application.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			Unauthorized(c)
			return
		}
		u, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			Unauthorized(c)
			return
		}
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// OptionalAuth sets the user when a usable bearer token is present and
// never aborts.
func OptionalAuth(resolver *application.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u := resolver.ResolveOptional(c.Request.Context(), BearerToken(c)); u != nil {
			c.Set(CtxUserKey, u)
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireAuth or OptionalAuth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok && u != nil
}
