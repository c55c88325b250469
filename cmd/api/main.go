package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jobforge/jobwork-api/internal/application/auth"
	"github.com/jobforge/jobwork-api/internal/application/order"
	"github.com/jobforge/jobwork-api/internal/application/rfq"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
	"github.com/jobforge/jobwork-api/internal/infrastructure/memory"
	infrapdf "github.com/jobforge/jobwork-api/internal/infrastructure/pdf"
	"github.com/jobforge/jobwork-api/internal/infrastructure/postgres"
	httpRouter "github.com/jobforge/jobwork-api/internal/interfaces/http"
	"github.com/jobforge/jobwork-api/pkg/config"
	"github.com/jobforge/jobwork-api/pkg/logger"
)

// repos groups every persistence port plus the transaction runner, filled by
// the store driver selected at startup.
type repos struct {
	Users         repository.UserRepository
	Companies     repository.CompanyRepository
	Profiles      repository.SupplierProfileRepository
	SKUs          repository.SKURepository
	RFQs          repository.RFQRepository
	Invites       repository.InviteRepository
	Quotes        repository.QuoteRepository
	Offers        repository.OfferRepository
	Orders        repository.OrderRepository
	Documents     repository.DocumentRepository
	Notifications repository.NotificationRepository
	Tx            rfq.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("starting application")

	ctx := context.Background()

	var r repos
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("PostgreSQL connection")
		}
		defer pool.Close()
		r = repos{
			Users:         postgres.NewUserRepository(pool),
			Companies:     postgres.NewCompanyRepository(pool),
			Profiles:      postgres.NewSupplierProfileRepository(pool),
			SKUs:          postgres.NewSKURepository(pool),
			RFQs:          postgres.NewRFQRepository(pool),
			Invites:       postgres.NewInviteRepository(pool),
			Quotes:        postgres.NewQuoteRepository(pool),
			Offers:        postgres.NewOfferRepository(pool),
			Orders:        postgres.NewOrderRepository(pool),
			Documents:     postgres.NewDocumentRepository(pool),
			Notifications: postgres.NewNotificationRepository(pool),
			Tx:            postgres.NewTxRunner(pool),
		}
	case config.StoreMemory:
		store := memory.NewStore()
		r = repos{
			Users:         memory.NewUserRepository(store),
			Companies:     memory.NewCompanyRepository(store),
			Profiles:      memory.NewSupplierProfileRepository(store),
			SKUs:          memory.NewSKURepository(store),
			RFQs:          memory.NewRFQRepository(store),
			Invites:       memory.NewInviteRepository(store),
			Quotes:        memory.NewQuoteRepository(store),
			Offers:        memory.NewOfferRepository(store),
			Orders:        memory.NewOrderRepository(store),
			Documents:     memory.NewDocumentRepository(store),
			Notifications: memory.NewNotificationRepository(store),
			Tx:            memory.NewTxRunner(store),
		}
	}

	notificationUC := usecase.NewNotificationUseCase(r.Notifications)
	authUC := auth.NewAuthUseCase(r.Users, r.Companies, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	rfqUC := rfq.NewUseCase(
		r.RFQs, r.Invites, r.Quotes, r.Offers, r.Orders,
		r.Users, r.Profiles, notificationUC, r.Tx,
	)
	orderUC := order.NewUseCase(
		r.Orders, r.Offers, r.RFQs, r.Users,
		notificationUC, infrapdf.NewMarotoPDFGenerator(),
	)
	companyUC := usecase.NewCompanyUseCase(r.Companies)
	supplierUC := usecase.NewSupplierUseCase(r.Profiles)
	skuUC := usecase.NewSKUUseCase(r.SKUs)
	documentUC := usecase.NewDocumentUseCase(r.Documents)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "JobForge API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		RFQUC:          rfqUC,
		OrderUC:        orderUC,
		CompanyUC:      companyUC,
		SupplierUC:     supplierUC,
		SKUUC:          skuUC,
		DocumentUC:     documentUC,
		NotificationUC: notificationUC,
		Auth: httpRouter.AuthConfig{
			JWTSecret:         cfg.JWT.Secret,
			Users:             r.Users,
			AllowLegacyHeader: cfg.Auth.AllowLegacyHeader,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
