// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"colibri/internal/config"
	"colibri/internal/core/apperror"
	appctx "colibri/internal/core/context"
	"colibri/internal/core/types"
	"colibri/internal/domain/auth"
	"colibri/internal/domain/catalog"
	"colibri/internal/domain/orders"
	"colibri/internal/infrastructure/storage/postgres"
	"colibri/pkg/logger"
)

type productSeed struct {
	sku      string
	name     string
	category string
	price    string
	stock    int
	sold     int
}

var productSeeds = []productSeed{
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

type orderSeed struct {
	clientName   string
	phone        string
	deliveryDate string
	description  string
	deposit      string
	status       orders.Status
}

var orderSeeds = []orderSeed{
	{"Lucía Rojas", "+56 9 1234 5678", "2024-05-12T15:00",
		"Torta fondant temática colibrí", "30000", orders.StatusPending},
	{"Javier Soto", "+56 9 8765 4321", "2024-05-10T12:30",
		"50 cupcakes personalizados cumpleaños", "20000", orders.StatusDelivered},
}

type userSeed struct {
	username string
	name     string
	password string
	role     string
}

var userSeeds = []userSeed{
	{"admin", "Administrador", "admin123", appctx.RoleAdmin},
	{"cajero", "Cajero Principal", "cajero123", appctx.RoleCashier},
}

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}
	log.Info("schema ensured")

	txManager := postgres.NewTxManager(pool)

	if err := seedProducts(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed products", "error", err)
	}
	if err := seedOrders(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed orders", "error", err)
	}
	if err := seedUsers(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed users", "error", err)
	}

	log.Info("seed complete")
}

func seedProducts(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := postgres.NewProductRepository(txManager)

	for _, s := range productSeeds {
		product := catalog.NewProduct(s.sku, s.name, s.category, types.MustMoney(s.price), s.stock)
		product.Sold = s.sold

		err := repo.Insert(ctx, product)
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeDuplicate {
				log.Infow("product already seeded", "sku", s.sku)
				continue
			}
			return err
		}
		log.Infow("product seeded", "sku", s.sku)
	}
	return nil
}

func seedOrders(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := postgres.NewOrderRepository(txManager)

	existing, err := repo.List(ctx, orders.ListFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("orders already seeded")
		return nil
	}

	service := orders.NewService(repo, postgres.NewNumeratorService(txManager), nil)
	for _, s := range orderSeeds {
		delivery, err := time.Parse("2006-01-02T15:04", s.deliveryDate)
		if err != nil {
			return err
		}
		order, err := service.Create(ctx, orders.CreateInput{
			ClientName:   s.clientName,
			Phone:        s.phone,
			DeliveryDate: delivery,
			Description:  s.description,
			Deposit:      types.MustMoney(s.deposit),
			Status:       s.status,
		})
		if err != nil {
			return err
		}
		log.Infow("order seeded", "number", order.Number, "client", s.clientName)
	}
	return nil
}

func seedUsers(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := postgres.NewUserRepository(txManager)

	for _, s := range userSeeds {
		user, err := auth.NewUser(s.username, s.name, s.password, s.role)
		if err != nil {
			return err
		}
		if err := repo.Upsert(ctx, user); err != nil {
			return err
		}
		log.Infow("user seeded", "username", s.username, "role", s.role)
	}
	return nil
}
