package memory

import (
	"context"
	"fmt"
	"time"

	"colibri/internal/core/numerator"
	"colibri/internal/core/types"
	"colibri/internal/domain/auth"
	"colibri/internal/domain/catalog"
	"colibri/internal/domain/orders"

	appctx "colibri/internal/core/context"
)

// Store bundles all in-memory repositories behind one handle.
type Store struct {
	Catalog   *CatalogRepository
	Orders    *OrderRepository
	Sales     *SaleRepository
	Users     *UserRepository
	Numerator *numerator.MemoryGenerator
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		Catalog:   NewCatalogRepository(),
		Orders:    NewOrderRepository(),
		Sales:     NewSaleRepository(),
		Users:     NewUserRepository(),
		Numerator: numerator.NewMemoryGenerator(),
	}
}

type productFixture struct {
	sku      string
	name     string
	category string
	price    string
	stock    int
	sold     int
}

var productFixtures = []productFixture{
	{"PAST-001", "Pastel de Vainilla", "Pasteles", "18.5", 12, 86},
	{"PAST-002", "Pastel Red Velvet", "Pasteles", "24.0", 6, 112},
	{"TORT-010", "Torta Tres Leches", "Tortas", "28.5", 4, 98},
	{"GALL-021", "Galletas de Mantequilla", "Galletas", "8.5", 35, 152},
	{"CHOC-005", "Bombones de Frambuesa", "Chocolates", "12.0", 20, 75},
	{"CHOC-008", "Tableta 70% Cacao", "Chocolates", "9.75", 10, 54},
	{"POST-012", "Cheesecake de Maracuyá", "Pasteles", "22.5", 5, 65},
	{"GALL-030", "Macarons Surtidos", "Galletas", "15.0", 8, 130},
	{"POST-040", "Mousse de Chocolate", "Postres", "14.0", 9, 48},
	{"POST-050", "Cupcakes Personalizados", "Postres", "16.0", 15, 102},
}

type orderFixture struct {
	clientName   string
	phone        string
	deliveryDate string
	description  string
	deposit      string
	status       orders.Status
}

var orderFixtures = []orderFixture{
	{"Lucía Rojas", "+56 9 1234 5678", "2024-05-12T15:00",
		"Torta fondant temática colibrí", "30000", orders.StatusPending},
	{"Javier Soto", "+56 9 8765 4321", "2024-05-10T12:30",
		"50 cupcakes personalizados cumpleaños", "20000", orders.StatusDelivered},
}

type userFixture struct {
	username string
	name     string
	password string
	role     string
}

var userFixtures = []userFixture{
	{"admin", "Administrador", "admin123", appctx.RoleAdmin},
	{"cajero", "Cajero Principal", "cajero123", appctx.RoleCashier},
}

// Seed loads the demo catalog, orders and accounts into the store.
func (s *Store) Seed(ctx context.Context) error {
	for _, f := range productFixtures {
		p := catalog.NewProduct(f.sku, f.name, f.category, types.MustMoney(f.price), f.stock)
		p.Sold = f.sold
		if err := s.Catalog.Insert(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", f.sku, err)
		}
	}

	orderSvc := orders.NewService(s.Orders, s.Numerator, nil)
	for _, f := range orderFixtures {
		delivery, err := time.Parse("2006-01-02T15:04", f.deliveryDate)
		if err != nil {
			return fmt.Errorf("seed order for %s: %w", f.clientName, err)
		}
		if _, err := orderSvc.Create(ctx, orders.CreateInput{
			ClientName:   f.clientName,
			Phone:        f.phone,
			DeliveryDate: delivery,
			Description:  f.description,
			Deposit:      types.MustMoney(f.deposit),
			Status:       f.status,
		}); err != nil {
			return fmt.Errorf("seed order for %s: %w", f.clientName, err)
		}
	}

	for _, f := range userFixtures {
		user, err := auth.NewUser(f.username, f.name, f.password, f.role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", f.username, err)
		}
		s.Users.Add(user)
	}

	return nil
}
