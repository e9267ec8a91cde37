package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"colibri/internal/core/apperror"
	"colibri/internal/domain/orders"
)

// CreateOrderRequest is the request body for POST /pedidos.
type CreateOrderRequest struct {
	ClientName   string          `json:"cliente_nombre" binding:"required"`
	Phone        string          `json:"cliente_telefono"`
	DeliveryDate string          `json:"fecha_entrega" binding:"required"`
	Description  string          `json:"descripcion"`
	Deposit      decimal.Decimal `json:"anticipo"`
	Status       string          `json:"estado"`
}

// deliveryDateFormats accepted on the wire, tried in order.
var deliveryDateFormats = []string{
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC3339,
}

// ToInput converts the request to domain input.
func (r *CreateOrderRequest) ToInput() (orders.CreateInput, error) {
	var delivery time.Time
	var err error
	for _, format := range deliveryDateFormats {
		delivery, err = time.Parse(format, r.DeliveryDate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return orders.CreateInput{}, apperror.NewValidation("invalid delivery date").
			WithDetail("field", "fecha_entrega").
			WithDetail("value", r.DeliveryDate)
	}

	return orders.CreateInput{
		ClientName:   r.ClientName,
		Phone:        r.Phone,
		DeliveryDate: delivery,
		Description:  r.Description,
		Deposit:      r.Deposit,
		Status:       StatusFromWire(r.Status),
	}, nil
}

// UpdateOrderStatusRequest is the request body for PATCH /pedidos/:numero/estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

// OrderFilterRequest narrows GET /pedidos results.
type OrderFilterRequest struct {
	Search      string `form:"buscar"`
	Status      string `form:"estado"`
	DeliveryDay string `form:"fecha_entrega"`
}

// ToFilter converts the request to a domain filter.
func (r *OrderFilterRequest) ToFilter() orders.ListFilter {
	filter := orders.ListFilter{
		Search:      r.Search,
		DeliveryDay: r.DeliveryDay,
	}
	if r.Status != "" {
		status := StatusFromWire(r.Status)
		filter.Status = &status
	}
	return filter
}

// OrderResponse carries one order register entry.
type OrderResponse struct {
	Number       string          `json:"numero"`
	ClientName   string          `json:"cliente_nombre"`
	Phone        string          `json:"cliente_telefono,omitempty"`
	DeliveryDate time.Time       `json:"fecha_entrega"`
	Description  string          `json:"descripcion,omitempty"`
	Deposit      decimal.Decimal `json:"anticipo"`
	Status       string          `json:"estado"`
	CreatedAt    time.Time       `json:"creado"`
}

// FromOrder creates OrderResponse from a domain order.
func FromOrder(o *orders.Order) OrderResponse {
	return OrderResponse{
		Number:       o.Number,
		ClientName:   o.ClientName,
		Phone:        o.Phone,
		DeliveryDate: o.DeliveryDate,
		Description:  o.Description,
		Deposit:      o.Deposit,
		Status:       statusToWire(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

// FromOrders converts an order slice.
func FromOrders(list []*orders.Order) []OrderResponse {
	out := make([]OrderResponse, len(list))
	for i, o := range list {
		out[i] = FromOrder(o)
	}
	return out
}

// StatusFromWire maps the Spanish wire status onto the domain enum.
// Unknown values pass through so the domain layer rejects them with a
// proper error.
func StatusFromWire(s string) orders.Status {
	switch s {
	case "pendiente":
		return orders.StatusPending
	case "entregado":
		return orders.StatusDelivered
	default:
		return orders.Status(s)
	}
}

func statusToWire(s orders.Status) string {
	switch s {
	case orders.StatusPending:
		return "pendiente"
	case orders.StatusDelivered:
		return "entregado"
	default:
		return string(s)
	}
}
