package faq

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stonkie-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the FAQ service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches FAQ routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/faq", h.general)
	rg.GET("/faq/:ticker", h.forTicker)
}

func (h *Handler) general(c *gin.Context) {
	respond.OK(c, gin.H{"questions": h.Svc.General(c.Request.Context())})
}

func (h *Handler) forTicker(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ticker is required", nil)
		return
	}
	c.Set("ticker", strings.ToLower(ticker))
	respond.OK(c, gin.H{"questions": h.Svc.ForTicker(c.Request.Context(), ticker)})
}
