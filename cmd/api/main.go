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

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/auth"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/usecase"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/HKRAGD/megaSafraSistem-sub000/internal/interfaces/http"
	"github.com/HKRAGD/megaSafraSistem-sub000/pkg/config"
	"github.com/HKRAGD/megaSafraSistem-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	chamberRepo := postgres.NewChamberRepository(pool)
	seedTypeRepo := postgres.NewSeedTypeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	allocator := inventory.NewLocationAllocator(locationRepo)
	inventoryUC := inventory.NewInventoryUseCase(txRunner, locationRepo, productRepo, movementRepo, allocator)
	withdrawalUC := inventory.NewWithdrawalUseCase(txRunner, withdrawalRepo)
	verifyUC := inventory.NewVerificationUseCase(movementRepo)
	chamberUC := usecase.NewChamberUseCase(chamberRepo, locationRepo)
	seedTypeUC := usecase.NewSeedTypeUseCase(seedTypeRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mega Safra API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChamberUC:    chamberUC,
		SeedTypeUC:   seedTypeUC,
		InventoryUC:  inventoryUC,
		WithdrawalUC: withdrawalUC,
		VerifyUC:     verifyUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
