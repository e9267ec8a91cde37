package handlers

import (
	"github.com/gin-gonic/gin"

	"colibri/internal/domain/orders"
	"colibri/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles the order register endpoints.
type OrderHandler struct {
	*BaseHandler
	service *orders.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *orders.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// Create handles POST /pedidos.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	order, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromOrder(order))
}

// List handles GET /pedidos.
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.OrderFilterRequest
	if !h.BindQuery(c, &req) {
		return
	}

	list, err := h.service.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromOrders(list)))
}

// Get handles GET /pedidos/:numero.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.service.Get(c.Request.Context(), c.Param("numero"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrder(order))
}

// UpdateStatus handles PATCH /pedidos/:numero/estado.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.SetStatus(c.Request.Context(), c.Param("numero"), dto.StatusFromWire(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrder(order))
}
