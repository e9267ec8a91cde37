package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"colibri/internal/domain/sales"
)

// CloseSaleRequest is the request body for POST /ventas.
type CloseSaleRequest struct {
	ReceiptNumber string `json:"numero_boleta" binding:"required"`
	PaymentMethod string `json:"medio_pago"`
}

// ToInput converts the request to domain input.
func (r *CloseSaleRequest) ToInput() sales.CloseInput {
	return sales.CloseInput{
		ReceiptNumber: r.ReceiptNumber,
		PaymentMethod: r.PaymentMethod,
	}
}

// SaleItemResponse carries one frozen sale line.
type SaleItemResponse struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"nombre"`
	UnitPrice decimal.Decimal `json:"precio"`
	Quantity  int             `json:"cantidad"`
}

// SaleResponse carries one ledger entry.
type SaleResponse struct {
	Number        string             `json:"numero"`
	ReceiptNumber string             `json:"numero_boleta"`
	PaymentMethod string             `json:"medio_pago"`
	Total         decimal.Decimal    `json:"total"`
	Date          time.Time          `json:"fecha"`
	Items         []SaleItemResponse `json:"items"`
}

// FromSale creates SaleResponse from a domain sale.
func FromSale(s *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			SKU:       item.SKU,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return SaleResponse{
		Number:        s.Number,
		ReceiptNumber: s.ReceiptNumber,
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total,
		Date:          s.Date,
		Items:         items,
	}
}

// FromSales converts a sale slice.
func FromSales(list []*sales.Sale) []SaleResponse {
	out := make([]SaleResponse, len(list))
	for i, s := range list {
		out[i] = FromSale(s)
	}
	return out
}
