package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/campus-store/internal/application/admin"
	"github.com/jhoicas/campus-store/internal/application/checkout"
	"github.com/jhoicas/campus-store/internal/application/session"
	"github.com/jhoicas/campus-store/internal/application/slip"
	"github.com/jhoicas/campus-store/internal/application/usecase"
	"github.com/jhoicas/campus-store/internal/application/verification"
	"github.com/jhoicas/campus-store/internal/infrastructure/backend"
	"github.com/jhoicas/campus-store/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/campus-store/internal/infrastructure/pdf"
	"github.com/jhoicas/campus-store/internal/infrastructure/slipxml"
	httpRouter "github.com/jhoicas/campus-store/internal/interfaces/http"
	"github.com/jhoicas/campus-store/pkg/config"
	"github.com/jhoicas/campus-store/pkg/logger"
	"github.com/jhoicas/campus-store/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("la aplicación terminó con error")
	}
}

// run arma las dependencias y sirve HTTP hasta SIGINT/SIGTERM. Los recursos abiertos se
// liberan antes de devolver, también si el arranque falla.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	tp, shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.OTel.Endpoint,
		Probability: cfg.OTel.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("inicializar trazas: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error().Err(err).Msg("apagado de trazas")
		}
	}()

	kv, closeStore, err := backend.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("abrir almacén clave-valor: %w", err)
	}
	defer closeStore()

	// Repositorios sobre el almacén clave-valor
	catalogStore := kvstore.NewCatalogStore(kv)
	orderStore := kvstore.NewOrderStore(kv)
	sessionStore := kvstore.NewSessionStore(kv)
	adminFlag := kvstore.NewAdminFlagStore(kv)

	// Comprobantes: huella HMAC, PDF y exportación
	signer, err := slipxml.NewSigner(cfg.Slip.Secret)
	if err != nil {
		return fmt.Errorf("huella de comprobantes: %w", err)
	}
	slipUC := slip.NewUseCase(orderStore, signer, infrapdf.NewMarotoSlipGenerator(""), slipxml.NewExporter())

	productUC := usecase.NewProductUseCase(catalogStore, log)
	cartUC := usecase.NewCartUseCase(catalogStore)
	checkoutSvc := checkout.NewService(cartUC, orderStore, sessionStore, signer, log)
	sessionUC := session.NewUseCase(sessionStore, orderStore, log)
	verificationUC := verification.NewUseCase(orderStore, signer, log)
	if rs, ok := kv.(verification.RevenueSource); ok {
		verificationUC.WithRevenue(rs)
	}
	adminUC, err := admin.NewUseCase(adminFlag, cfg.Admin.Password, cfg.Admin.PasswordHash, admin.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	if err != nil {
		return fmt.Errorf("panel de administración: %w", err)
	}
	if cfg.Admin.PasswordHash == "" && cfg.Admin.Password == "admin123" {
		log.Warn().Msg("ADMIN_PASSWORD por defecto; defina ADMIN_PASSWORD_HASH para producción")
	}

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:   cfg.App.Name,
		Log:    log,
		Tracer: tp.Tracer(cfg.App.Name),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Campus Store API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		CartUC:         cartUC,
		Checkout:       checkoutSvc,
		SessionUC:      sessionUC,
		AdminUC:        adminUC,
		VerificationUC: verificationUC,
		SlipUC:         slipUC,
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
	return nil
}
