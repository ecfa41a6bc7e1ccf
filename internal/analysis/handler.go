package analysis

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"stonkie-backend/internal/shared/server/respond"
	"stonkie-backend/internal/statements"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/company/analyze", h.analyze)
	rg.GET("/company/:ticker/analysis", h.getArtifact)
	rg.GET("/company/:ticker/analyses", h.listHistory)
}

type analyzeRequest struct {
	Question string `json:"question"`
	Ticker   string `json:"ticker"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Question is required in request body", []map[string]string{
			{"field": "question", "issue": "required"},
		})
		return
	}
	ticker := statements.NormalizeTicker(req.Ticker)
	if ticker == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Ticker is required in request body", []map[string]string{
			{"field": "ticker", "issue": "required"},
		})
		return
	}
	if !statements.ValidTicker(ticker) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ticker is invalid", []map[string]string{
			{"field": "ticker", "issue": "invalid"},
		})
		return
	}
	c.Set("ticker", ticker)

	result, err := h.Svc.Analyze(c.Request.Context(), ticker, req.Question)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Something went wrong. Please try again later.", nil)
		return
	}
	respond.Success(c, result)
}

func (h *Handler) getArtifact(c *gin.Context) {
	ticker, ok := tickerParam(c)
	if !ok {
		return
	}

	text, err := h.Svc.Artifact(c.Request.Context(), ticker)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to read analysis", nil)
		}
		return
	}

	if strings.EqualFold(c.Query("format"), "html") {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(text), &buf); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render analysis", nil)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
		return
	}

	respond.OK(c, gin.H{
		"ticker": ticker,
		"text":   text,
	})
}

func (h *Handler) listHistory(c *gin.Context) {
	ticker, ok := tickerParam(c)
	if !ok {
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}

	items, err := h.Svc.History(c.Request.Context(), ticker, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.OK(c, gin.H{
		"ticker":   ticker,
		"analyses": items,
	})
}

func tickerParam(c *gin.Context) (string, bool) {
	ticker := statements.NormalizeTicker(c.Param("ticker"))
	if !statements.ValidTicker(ticker) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ticker is invalid", nil)
		return "", false
	}
	c.Set("ticker", ticker)
	return ticker, true
}
