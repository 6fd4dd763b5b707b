package summary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hallbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	summary, err := h.service.Build(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build summary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
