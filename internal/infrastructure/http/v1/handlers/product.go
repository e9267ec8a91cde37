package handlers

import (
	"github.com/gin-gonic/gin"

	"colibri/internal/domain/catalog"
	"colibri/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles the catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	service *catalog.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *catalog.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// List handles GET /productos.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(dto.FromProducts(products)))
}

// Get handles GET /productos/:sku.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.service.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduct(product))
}

// Create handles POST /productos. Admin only.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), product); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromProduct(product))
}

// UpdatePrice handles PATCH /productos/:sku/precio. Admin only.
func (h *ProductHandler) UpdatePrice(c *gin.Context) {
	var req dto.UpdatePriceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sku := c.Param("sku")
	if err := h.service.SetPrice(c.Request.Context(), sku, req.Price); err != nil {
		h.Error(c, err)
		return
	}

	product, err := h.service.GetBySKU(c.Request.Context(), sku)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduct(product))
}
