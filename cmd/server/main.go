package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Groundwork-Books/storefront-api/internal/commerce"
	"github.com/Groundwork-Books/storefront-api/internal/config"
	httpapi "github.com/Groundwork-Books/storefront-api/internal/http"
	"github.com/Groundwork-Books/storefront-api/internal/inventory"
	"github.com/Groundwork-Books/storefront-api/internal/payments"
	"github.com/Groundwork-Books/storefront-api/internal/search"
	"github.com/Groundwork-Books/storefront-api/internal/searchindex"
	"github.com/Groundwork-Books/storefront-api/internal/webhook"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}
	if cfg.AdminSecret == config.InsecureAdminDefault {
		log.Warn("ADMIN_PASSWORD is unset; using the insecure local-development default")
	}

	// Shared HTTP client for all vendor calls
	sharedHTTP := &http.Client{Timeout: cfg.UpstreamTimeout}

	// Vendor clients, constructed once at startup and passed into handlers
	commerceClient, err := commerce.NewClient(cfg.CommerceBaseURL, cfg.CommerceToken, sharedHTTP)
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}
	indexClient := searchindex.NewClient(cfg.SearchIndexHost, cfg.SearchAPIKey, sharedHTTP)

	router := httpapi.NewRouter(httpapi.Deps{
		Log:       log,
		Cfg:       cfg,
		Catalog:   commerceClient,
		Inventory: inventory.NewAggregator(commerceClient),
		Payments:  payments.NewSubmitter(commerceClient, cfg.CommerceLocationID),
		Webhook:   webhook.NewReconciler(commerceClient, log),
		Search:    search.NewGateway(indexClient, commerceClient, cfg.SearchNamespace, cfg.SearchIndexName, cfg.SearchIndexHost),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Port).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
	log.Info("shutdown complete")
}
