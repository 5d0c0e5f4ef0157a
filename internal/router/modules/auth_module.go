package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	handlers "github.com/Naveenkumar-0814/PurityPropAI/internal/interface/http"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/interface/middleware"
)

// AuthModule wires the auth handlers.
// Public: POST /auth/register, /auth/login, /auth/refresh
// Protected: GET /auth/me
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Resolver *application.IdentityResolver
}

func NewAuthModule(h *handlers.AuthHandler, resolver *application.IdentityResolver) *AuthModule {
	return &AuthModule{Handler: h, Resolver: resolver}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	g.POST("/register", m.Handler.Register)
	g.POST("/login", m.Handler.Login)
	g.POST("/refresh", m.Handler.Refresh)

	g.GET("/me", middleware.RequireAuth(m.Resolver), m.Handler.Me)
}
