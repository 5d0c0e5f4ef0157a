package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/interface/middleware"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/response"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/validation"
)

type SessionHandler struct {
	Svc    *application.SessionService
	Logger *logrus.Logger
}

func NewSessionHandler(svc *application.SessionService, logger *logrus.Logger) *SessionHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SessionHandler{Svc: svc, Logger: logger}
}

type messageRequest struct {
	Message string `json:"message" binding:"required"`
}

type sessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

type messageResponse struct {
	SessionID string   `json:"session_id"`
	Message   string   `json:"message"`
	Language  string   `json:"language"`
	Timestamp string   `json:"timestamp"`
	Context   string   `json:"context"`
	Topics    []string `json:"topics"`
}

type historyResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []entity.ChatMessage `json:"messages"`
}

// Create POST /api/sessions (OptionalAuth)
func (h *SessionHandler) Create(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	cs, err := h.Svc.Create(c.Request.Context(), u)
	if err != nil {
		h.fail(c, err, "create")
		return
	}
	countSession("created")
	response.Success(c, http.StatusCreated, sessionResponse{SessionID: cs.ID, CreatedAt: cs.CreatedAt}, "session created", nil).Send(c)
}

// PostMessage POST /api/sessions/:id/messages {message} (OptionalAuth)
func (h *SessionHandler) PostMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)).Send(c)
		return
	}
	u, _ := middleware.CurrentUser(c)
	res, err := h.Svc.PostMessage(c.Request.Context(), c.Param("id"), u, req.Message)
	if err != nil {
		h.fail(c, err, "post message")
		return
	}
	countSession("messages")
	response.Success(c, http.StatusCreated, messageResponse{
		SessionID: res.SessionID,
		Message:   res.Message.Content,
		Language:  res.Message.Language,
		Timestamp: res.Message.Timestamp.UTC().Format(time.RFC3339Nano),
		Context:   res.Context,
		Topics:    res.Topics,
	}, "message recorded", nil).Send(c)
}

// History GET /api/sessions/:id/history (OptionalAuth)
func (h *SessionHandler) History(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	cs, msgs, err := h.Svc.History(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		h.fail(c, err, "history")
		return
	}
	response.Success(c, http.StatusOK, historyResponse{SessionID: cs.ID, Messages: msgs}, "conversation history", nil).Send(c)
}

func (h *SessionHandler) fail(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, application.ErrSessionNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil).Send(c)
	case errors.Is(err, application.ErrEmptyMessage):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"message": "must not be empty"}).Send(c)
	default:
		entry := h.Logger.WithError(err).WithFields(logrus.Fields{
			"operation":  op,
			"request_id": c.GetString("request_id"),
		})
		if oopsErr, ok := oops.AsOops(err); ok {
			entry = entry.WithField("code", fmt.Sprint(oopsErr.Code()))
		}
		entry.Error("session request failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).Send(c)
	}
}
