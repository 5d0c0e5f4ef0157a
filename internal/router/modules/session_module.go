package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	handlers "github.com/Naveenkumar-0814/PurityPropAI/internal/interface/http"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/interface/middleware"
)

// SessionModule wires the chat session routes. A bearer token is optional;
// when present it binds new sessions to the user and unlocks their history.
type SessionModule struct {
	Handler  *handlers.SessionHandler
	Resolver *application.IdentityResolver
}

func NewSessionModule(h *handlers.SessionHandler, resolver *application.IdentityResolver) *SessionModule {
	return &SessionModule{Handler: h, Resolver: resolver}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/sessions", middleware.OptionalAuth(m.Resolver))
	g.POST("", m.Handler.Create)
	g.POST("/:id/messages", m.Handler.PostMessage)
	g.GET("/:id/history", m.Handler.History)
}
