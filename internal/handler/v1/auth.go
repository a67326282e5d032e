package v1

import (
	"errors"
	"net/http"

	"github.com/be3health/patient-registry/internal/dto"
	"github.com/be3health/patient-registry/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/refresh", h.refresh)
}

func (h *AuthHandler) login(c *gin.Context) {
	var in dto.LoginInput
	if !bindJSON(c, &in) {
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), in.Email, in.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrAccountInactive) {
			c.JSON(http.StatusUnauthorized, messageResponse{Message: "Credenciais inválidas."})
			return
		}
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) refresh(c *gin.Context) {
	var in dto.RefreshInput
	if !bindJSON(c, &in) {
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, messageResponse{Message: "Credenciais inválidas."})
		return
	}
	c.JSON(http.StatusOK, pair)
}
