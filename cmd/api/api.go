package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sh1vam31/food-inventory-console/docs"
	"github.com/sh1vam31/food-inventory-console/internal/auth"
	"github.com/sh1vam31/food-inventory-console/internal/queue"
	"github.com/sh1vam31/food-inventory-console/internal/ratelimiter"
	"github.com/sh1vam31/food-inventory-console/internal/service"
	"github.com/sh1vam31/food-inventory-console/internal/store/mongo"
	"github.com/sh1vam31/food-inventory-console/internal/worker"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	authenticator *auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	storage       *mongo.Storage
	broker        queue.Broker
	healthChecks  map[string]pinger
	cartService   *service.CartService
	orderService  *service.OrderService
	auditWorker   *worker.SubmissionAuditWorker
	cartJanitor   *worker.CartJanitor
}

type config struct {
	addr        string
	env         string
	apiURL      string
	auth        authConfig
	rateLimiter ratelimiter.Config
	inventory   inventoryConfig
	carts       cartsConfig
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
}

type authConfig struct {
	secret string
	issuer string
}

type inventoryConfig struct {
	URL     string
	Timeout time.Duration
}

type cartsConfig struct {
	checkDebounce time.Duration
	submitTimeout time.Duration
	catalogTTL    time.Duration
	idleTTL       time.Duration
	sweepInterval time.Duration
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.requireRole(auth.RoleOrderMaintainer, auth.RoleAdmin))

			r.Get("/catalog", app.listCatalogHandler)

			r.Route("/carts", func(r chi.Router) {
				r.Post("/", app.openCartHandler)

				r.Route("/{cart_id}", func(r chi.Router) {
					r.Get("/", app.getCartHandler)
					r.Delete("/", app.closeCartHandler)
					r.Post("/items", app.addCartItemHandler)
					r.Put("/items/{menu_item_id}", app.setCartItemQuantityHandler)
					r.Delete("/items/{menu_item_id}", app.removeCartItemHandler)
					r.Post("/recheck", app.recheckCartHandler)
					r.Post("/submit", app.submitCartHandler)
				})
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", app.listOrdersHandler)
				r.Get("/{order_id}", app.getOrderHandler)
				r.Patch("/{order_id}/cancel", app.cancelOrderHandler)
				r.Patch("/{order_id}/complete", app.completeOrderHandler)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.requireRole(auth.RoleAdmin))

			r.Get("/audit/submissions", app.listSubmissionsHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Order Console"
	docs.SwaggerInfo.Description = "Order composition console for the food inventory service"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.auditWorker != nil {
		if err := app.auditWorker.Start(); err != nil {
			return fmt.Errorf("failed to start submission audit worker: %w", err)
		}
	}
	if app.cartJanitor != nil {
		if err := app.cartJanitor.Start(); err != nil {
			return fmt.Errorf("failed to start cart janitor: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		// stop accepting submissions before the broker goes away
		err := srv.Shutdown(ctx)

		if app.cartJanitor != nil {
			app.cartJanitor.Stop()
		}
		if app.auditWorker != nil {
			app.auditWorker.Stop()
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		shutdown <- err
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
