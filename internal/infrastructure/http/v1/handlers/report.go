package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/orders"
	"colibri/internal/domain/reports"
	"colibri/internal/domain/sales"
	"colibri/internal/infrastructure/http/v1/dto"
)

// ReportHandler handles the reporting endpoints.
type ReportHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, service *reports.Service) *ReportHandler {
	return &ReportHandler{BaseHandler: base, service: service}
}

// parseRange parses the optional desde/hasta query range. Both dates are
// calendar days; hasta is inclusive on the wire, so the range runs to the
// following midnight.
func (h *ReportHandler) parseRange(c *gin.Context) (*sales.DateRange, bool) {
	var req dto.DateRangeRequest
	if !h.BindQuery(c, &req) {
		return nil, false
	}
	if req.From == "" && req.To == "" {
		return nil, true
	}

	parse := func(value, field string) (time.Time, bool) {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid date").
				WithDetail("field", field).
				WithDetail("value", value))
			return time.Time{}, false
		}
		return t, true
	}

	rng := sales.DateRange{}
	if req.From != "" {
		from, ok := parse(req.From, "desde")
		if !ok {
			return nil, false
		}
		rng.From = from
	}
	if req.To != "" {
		to, ok := parse(req.To, "hasta")
		if !ok {
			return nil, false
		}
		rng.To = to.AddDate(0, 0, 1)
	} else {
		rng.To = time.Now().UTC().AddDate(0, 0, 1)
	}
	return &rng, true
}

// Summary handles GET /reportes/resumen.
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), time.Now().UTC())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSummary(summary))
}

// Sales handles GET /reportes/ventas.
func (h *ReportHandler) Sales(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	list, err := h.service.ListSales(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromSales(list)))
}

// TopProducts handles GET /reportes/top-productos.
func (h *ReportHandler) TopProducts(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}
	limit := h.ParseIntQuery(c, "limite", reports.DefaultTopLimit)

	top, err := h.service.TopProducts(c.Request.Context(), limit, rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromTopProducts(top)))
}

// LowStock handles GET /reportes/stock-bajo.
func (h *ReportHandler) LowStock(c *gin.Context) {
	low, err := h.service.LowStockProducts(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromProducts(low)))
}

// ExportSalesCSV handles GET /reportes/ventas.csv.
func (h *ReportHandler) ExportSalesCSV(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	out, err := h.service.ExportSalesCSV(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.csv(c, "ventas.csv", out)
}

// ExportOrdersCSV handles GET /reportes/pedidos.csv.
func (h *ReportHandler) ExportOrdersCSV(c *gin.Context) {
	out, err := h.service.ExportOrdersCSV(c.Request.Context(), orders.ListFilter{})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.csv(c, "pedidos.csv", out)
}

func (h *ReportHandler) csv(c *gin.Context, filename, content string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
