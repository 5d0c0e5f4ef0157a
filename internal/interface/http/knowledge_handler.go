package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/interface/middleware"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/knowledge"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/response"
)

type KnowledgeHandler struct {
	Base knowledge.Base
}

func NewKnowledgeHandler(base knowledge.Base) *KnowledgeHandler {
	return &KnowledgeHandler{Base: base}
}

type knowledgeResponse struct {
	Context       string   `json:"context"`
	Topics        []string `json:"topics"`
	Authenticated bool     `json:"authenticated"`
}

// Context GET /api/knowledge/context?q= (OptionalAuth)
func (h *KnowledgeHandler) Context(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid query", map[string]string{"q": "is required"}).Send(c)
		return
	}
	_, authed := middleware.CurrentUser(c)

	topics := h.Base.Match(q)
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	response.Success(c, http.StatusOK, knowledgeResponse{
		Context:       h.Base.ContextFor(q),
		Topics:        names,
		Authenticated: authed,
	}, "knowledge context", nil).Send(c)
}
