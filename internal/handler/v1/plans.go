package v1

import (
	"net/http"

	"github.com/be3health/patient-registry/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlanHandler struct {
	svc *service.PlanService
	log *zap.Logger
}

func NewPlanHandler(svc *service.PlanService, log *zap.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: log}
}

func (h *PlanHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/plans", h.list)
}

func (h *PlanHandler) list(c *gin.Context) {
	plans, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}
