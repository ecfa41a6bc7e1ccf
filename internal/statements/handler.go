package statements

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stonkie-backend/internal/shared/metrics"
	"stonkie-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the statements service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches statement routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/financial-data/:ticker/:report_type", h.getFinancialData)
}

func (h *Handler) getFinancialData(c *gin.Context) {
	rt, err := ParseReportType(c.Param("report_type"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_report_type", "Invalid report type. Must be one of: "+strings.Join(ReportTypeNames(), ", "), gin.H{
			"valid": ReportTypeNames(),
		})
		return
	}
	c.Set("reportType", string(rt))

	ticker := NormalizeTicker(c.Param("ticker"))
	if !ValidTicker(ticker) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ticker is invalid", []map[string]string{
			{"field": "ticker", "issue": "invalid"},
		})
		return
	}
	c.Set("ticker", ticker)

	table, err := h.Svc.Load(c.Request.Context(), ticker, rt)
	if err != nil {
		switch {
		case errors.Is(err, ErrMalformedInput):
			metrics.IncStatementError()
			respond.Error(c, http.StatusInternalServerError, "malformed_statement", "statement content could not be parsed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to load financial data", nil)
		}
		return
	}

	columns := table.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := table.Rows
	if rows == nil {
		rows = []Row{}
	}
	respond.OK(c, gin.H{
		"data":    rows,
		"columns": columns,
	})
}
