package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jhoicas/campus-store/internal/application/admin"
	"github.com/jhoicas/campus-store/internal/application/checkout"
	"github.com/jhoicas/campus-store/internal/application/session"
	"github.com/jhoicas/campus-store/internal/application/slip"
	"github.com/jhoicas/campus-store/internal/application/usecase"
	"github.com/jhoicas/campus-store/internal/application/verification"
	"github.com/jhoicas/campus-store/pkg/logger"
)

// AppOptions configuración de la aplicación Fiber.
type AppOptions struct {
	Name   string
	Log    *logger.Logger
	Tracer trace.Tracer // nil = sin trazas
}

// NewApp crea la aplicación Fiber con recover, trazas, log de peticiones y /health.
func NewApp(opts AppOptions) *fiber.App {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("")
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(Tracing(opts.Tracer))
	app.Use(RequestLogger(opts.Log.Component("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	CartUC         *usecase.CartUseCase
	Checkout       *checkout.Service
	SessionUC      *session.UseCase
	AdminUC        *admin.UseCase
	VerificationUC *verification.UseCase
	SlipUC         *slip.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	productHandler := NewProductHandler(deps.ProductUC)
	cartHandler := NewCartHandler(deps.CartUC)
	orderHandler := NewOrderHandler(deps.Checkout, deps.SlipUC)
	sessionHandler := NewSessionHandler(deps.SessionUC)
	adminHandler := NewAdminHandler(deps.AdminUC, deps.VerificationUC, deps.SlipUC)

	// Catálogo (público)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/categories", productHandler.Categories)

	// Carrito (sesión única del proceso)
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:id", cartHandler.UpdateItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	// Órdenes
	api.Post("/orders", orderHandler.Create)
	api.Get("/orders/:id/slip", orderHandler.Slip)

	// Sesión del cliente
	sess := api.Group("/session")
	sess.Post("/", sessionHandler.SignIn)
	sess.Get("/", sessionHandler.Current)
	sess.Delete("/", sessionHandler.SignOut)
	sess.Get("/orders", sessionHandler.MyOrders)

	// Panel de administración
	api.Post("/admin/login", adminHandler.Login)
	protected := api.Group("/admin", RequireAdmin(deps.AdminUC))
	protected.Post("/logout", adminHandler.Logout)

	orders := protected.Group("/orders")
	orders.Get("/", adminHandler.ListOrders)
	orders.Get("/summary", adminHandler.Summary)
	orders.Get("/export", adminHandler.Export)
	orders.Get("/verify/:id", adminHandler.Verify)
	orders.Post("/:id/complete", adminHandler.Complete)
	orders.Get("/:id/fingerprint/:fp", adminHandler.CheckFingerprint)

	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
