package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/Groundwork-Books/storefront-api/internal/config"
	"github.com/Groundwork-Books/storefront-api/internal/http/handlers"
	"github.com/Groundwork-Books/storefront-api/internal/middleware"
)

type Deps struct {
	Log *logrus.Logger
	Cfg config.Config

	Catalog   handlers.CatalogService
	Inventory handlers.AvailabilityService
	Payments  handlers.PaymentService
	Webhook   handlers.WebhookProcessor
	Search    handlers.SearchService
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middlewares (outer -> inner)
	r.Use(middleware.Recover(d.Log))
	r.Use(middleware.CORS(d.Cfg.CORSAllowOrigins))
	r.Use(middleware.CorrelationID)
	r.Use(middleware.RequestLogging(d.Log))

	health := &handlers.HealthHandler{}
	r.Get("/health", health.Live)

	books := handlers.NewCatalogHandler(d.Catalog)
	inv := handlers.NewInventoryHandler(d.Inventory)
	pay := handlers.NewPaymentHandler(d.Payments)
	hook := handlers.NewWebhookHandler(d.Webhook)
	srch := handlers.NewSearchHandler(d.Search)

	r.Route("/api", func(r chi.Router) {
		r.Get("/books", books.List)
		r.Get("/books/{id}", books.Get)

		r.Post("/inventory", inv.Availability)

		r.Post("/orders/{orderId}/payment", pay.Submit)

		// The processor calls this asynchronously, independent of any
		// storefront request's lifetime.
		r.Post("/webhooks/payment", hook.Receive)

		r.Get("/search", srch.Query)
		r.Get("/search/status", srch.Status)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminGate(d.Cfg.AdminSecret))
			r.Post("/search/sync", srch.Sync)
		})
	})

	return r
}
