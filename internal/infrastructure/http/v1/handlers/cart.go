package handlers

import (
	"github.com/gin-gonic/gin"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/cart"
	"colibri/internal/domain/catalog"
	"colibri/internal/infrastructure/http/v1/dto"
)

// CartHandler handles the sale-in-progress endpoints. Each cashier sees
// only their own cart, keyed by the authenticated user.
type CartHandler struct {
	*BaseHandler
	carts   *cart.Manager
	catalog *catalog.Service
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(base *BaseHandler, carts *cart.Manager, catalogSvc *catalog.Service) *CartHandler {
	return &CartHandler{BaseHandler: base, carts: carts, catalog: catalogSvc}
}

func (h *CartHandler) cart(c *gin.Context) *cart.Cart {
	return h.carts.Get(h.GetUserID(c))
}

// Get handles GET /carrito.
func (h *CartHandler) Get(c *gin.Context) {
	h.OK(c, dto.FromCart(h.cart(c)))
}

// AddItem handles POST /carrito/items. Adds one unit of the product,
// snapshotting its current price.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.catalog.GetBySKU(c.Request.Context(), req.SKU)
	if err != nil {
		h.Error(c, err)
		return
	}

	userCart := h.cart(c)
	userCart.Add(product)
	h.OK(c, dto.FromCart(userCart))
}

// SetQuantity handles PUT /carrito/items/:sku. Zero or negative removes
// the line.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req dto.SetCartQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sku := c.Param("sku")
	userCart := h.cart(c)
	if !userCart.SetQuantity(sku, req.Quantity) {
		h.Error(c, apperror.NewNotFound("cart item", sku))
		return
	}

	h.OK(c, dto.FromCart(userCart))
}

// Clear handles DELETE /carrito.
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart(c).Clear()
	h.NoContent(c)
}
