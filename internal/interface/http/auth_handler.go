package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/application"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/interface/middleware"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/response"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,displayname"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type tokenResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	TokenType    string            `json:"token_type"`
	User         entity.PublicUser `json:"user"`
}

func toTokenResponse(res *application.AuthResult) tokenResponse {
	return tokenResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		TokenType:    "bearer",
		User:         res.User.Public(),
	}
}

func tokenMeta(res *application.AuthResult) map[string]any {
	return map[string]any{
		"access_expires_at":  res.AccessTokenExpiry,
		"refresh_expires_at": res.RefreshTokenExpiry,
	}
}

// Register POST /api/auth/register {email, password, name}
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)).Send(c)
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		count("register_failed")
		h.fail(c, err, "register")
		return
	}
	count("register_ok")
	response.Success(c, http.StatusCreated, toTokenResponse(res), "registered", tokenMeta(res)).Send(c)
}

// Login POST /api/auth/login {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)).Send(c)
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		count("login_failed")
		h.fail(c, err, "login")
		return
	}
	count("login_ok")
	response.Success(c, http.StatusOK, toTokenResponse(res), "login successful", tokenMeta(res)).Send(c)
}

// Refresh POST /api/auth/refresh {refresh_token}
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)).Send(c)
		return
	}
	res, err := h.Svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		count("refresh_failed")
		h.fail(c, err, "refresh")
		return
	}
	count("refresh_ok")
	response.Success(c, http.StatusOK, toTokenResponse(res), "token refreshed", tokenMeta(res)).Send(c)
}

// Me GET /api/auth/me (RequireAuth)
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Unauthorized(c)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "current user", nil).Send(c)
}

// fail maps use-case errors onto HTTP statuses. Internal details stay in the log.
func (h *AuthHandler) fail(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusConflict, err.Error(), nil).Send(c)
	case errors.Is(err, application.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil).Send(c)
	case errors.Is(err, application.ErrUnauthorized):
		middleware.Unauthorized(c)
	default:
		entry := h.Logger.WithError(err).WithFields(logrus.Fields{
			"operation":  op,
			"request_id": c.GetString("request_id"),
		})
		if oopsErr, ok := oops.AsOops(err); ok {
			entry = entry.WithField("code", fmt.Sprint(oopsErr.Code()))
		}
		entry.Error("auth request failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).Send(c)
	}
}
