package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/be3health/patient-registry/internal/service"
	"github.com/be3health/patient-registry/internal/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The three error body shapes of the API contract. The frontend
// branches on status code and relies on these exact field names.
type errorListResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type serverErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// respondServiceError maps the service error taxonomy onto transport
// status codes in one place: validation → 400, not-found → 404,
// anything else → 500.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, errorListResponse{Errors: validationErr.Errors})
		return
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, messageResponse{Message: notFoundErr.Message})
		return
	}

	log.Error("unhandled service error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, serverErrorResponse{
		Message: "Erro interno do servidor",
		Detail:  err.Error(),
	})
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Corpo da requisição inválido."})
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "ID inválido."})
		return 0, false
	}
	return id, true
}
