package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	handlers "github.com/Naveenkumar-0814/PurityPropAI/internal/interface/http"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/interface/middleware"
)

type KnowledgeModule struct {
	Handler  *handlers.KnowledgeHandler
	Resolver *application.IdentityResolver
}

func NewKnowledgeModule(h *handlers.KnowledgeHandler, resolver *application.IdentityResolver) *KnowledgeModule {
	return &KnowledgeModule{Handler: h, Resolver: resolver}
}

func (m *KnowledgeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/knowledge/context", middleware.OptionalAuth(m.Resolver), m.Handler.Context)
}
