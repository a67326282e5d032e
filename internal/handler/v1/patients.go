package v1

import (
	"fmt"
	"net/http"

	"github.com/be3health/patient-registry/internal/dto"
	"github.com/be3health/patient-registry/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PatientHandler struct {
	svc *service.PatientService
	log *zap.Logger
}

func NewPatientHandler(svc *service.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{svc: svc, log: log}
}

func (h *PatientHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/patients", h.list)
	rg.POST("/patients", h.create)
	rg.GET("/patients/:id", h.get)
	rg.PUT("/patients/:id", h.update)
	rg.DELETE("/patients/:id", h.deactivate)
	rg.PATCH("/patients/:id/activate", h.activate)
}

func (h *PatientHandler) list(c *gin.Context) {
	patients, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if p == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) create(c *gin.Context) {
	var in dto.PatientInput
	if !bindJSON(c, &in) {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &in, actorFrom(c))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/patients/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *PatientHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in dto.PatientInput
	if !bindJSON(c, &in) {
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, &in, actorFrom(c))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PatientHandler) deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Deactivate(c.Request.Context(), id, actorFrom(c)); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PatientHandler) activate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Activate(c.Request.Context(), id, actorFrom(c)); err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
