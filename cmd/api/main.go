package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/auth"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/ports"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/sales"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/usecase"
	"github.com/Dumstain/GPSBackendFarmacia/internal/infrastructure/postgres"
	infras3 "github.com/Dumstain/GPSBackendFarmacia/internal/infrastructure/s3"
	httpRouter "github.com/Dumstain/GPSBackendFarmacia/internal/interfaces/http"
	"github.com/Dumstain/GPSBackendFarmacia/pkg/config"
	"github.com/Dumstain/GPSBackendFarmacia/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Almacén de imágenes: deshabilitado si no hay bucket configurado
	var assetStore ports.AssetStore
	store, err := infras3.New(ctx, cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de binarios S3")
	}
	if store != nil {
		assetStore = store
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("almacén de imágenes habilitado")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.ExpMinutes,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.DefaultAvatar)
	userUC := usecase.NewUserUseCase(userRepo, cfg.Auth.DefaultAvatar)
	productUC := usecase.NewProductUseCase(productRepo, assetStore)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	saleUC := sales.New(txRunner, saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 << 20, // subida de imágenes
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SaleUC:      saleUC,
		JWTSecret:   cfg.JWT.Secret,
		ProtectCRUD: cfg.Auth.ProtectCRUD,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
