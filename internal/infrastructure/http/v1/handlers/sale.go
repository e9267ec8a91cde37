package handlers

import (
	"github.com/gin-gonic/gin"

	"colibri/internal/domain/sales"
	"colibri/internal/infrastructure/http/v1/dto"
)

// SaleHandler handles the sale ledger endpoints.
type SaleHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *sales.Service) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service}
}

// Close handles POST /ventas. Completes the cashier's sale in progress.
func (h *SaleHandler) Close(c *gin.Context) {
	var req dto.CloseSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sale, err := h.service.Close(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromSale(sale))
}

// List handles GET /ventas.
func (h *SaleHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromSales(list)))
}
