// Package app wires configuration, stores, services and handlers into a
// runnable Fiber application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JojerDojer/web-420/internal/config"
	"github.com/JojerDojer/web-420/internal/database"
	"github.com/JojerDojer/web-420/internal/handlers"
	"github.com/JojerDojer/web-420/internal/keylock"
	"github.com/JojerDojer/web-420/internal/middleware"
	"github.com/JojerDojer/web-420/internal/services"
	"github.com/JojerDojer/web-420/pkg/rabbitmq"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the already-opened resources the HTTP layer is built on.
type Deps struct {
	Stores   *database.Stores
	Locker   keylock.Locker
	Events   services.EventPublisher // nil disables event publishing
	Registry *prometheus.Registry
}

// App is the assembled service together with the resources it owns.
type App struct {
	Fiber *fiber.App
	MQ    *rabbitmq.Client // nil when RABBITMQ_URL is empty

	stores *database.Stores
	redis  *redis.Client
}

// New opens every backing resource named by cfg and builds the app.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	stores, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := &App{stores: stores}

	locker, err := a.newLocker(ctx, cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	deps := Deps{Stores: stores, Locker: locker, Registry: NewRegistry()}
	if cfg.RabbitMQURL != "" {
		a.MQ, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			_ = a.Close(ctx)
			return nil, err
		}
		deps.Events = a.MQ
	} else {
		slog.Info("RABBITMQ_URL not set, domain events are disabled")
	}

	a.Fiber, err = Build(cfg, deps)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func (a *App) newLocker(ctx context.Context, cfg *config.Config) (keylock.Locker, error) {
	switch cfg.LockBackend {
	case config.LockNone:
		slog.Warn("LOCK_BACKEND=none, concurrent appends to the same parent may be lost")
		return keylock.Noop{}, nil
	case config.LockRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		a.redis = redis.NewClient(opts)
		if err := a.redis.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return keylock.NewRedis(a.redis, "web420:lock:", cfg.LockTTL), nil
	default:
		return keylock.NewLocal(), nil
	}
}

// Close releases the resources New opened.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.MQ != nil {
		errs = append(errs, a.MQ.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.stores != nil {
		errs = append(errs, a.stores.Close(ctx))
	}
	return errors.Join(errs...)
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Build assembles the Fiber app over deps.
func Build(cfg *config.Config, deps Deps) (*fiber.App, error) {
	if deps.Locker == nil {
		deps.Locker = keylock.NewLocal()
	}
	if deps.Registry == nil {
		deps.Registry = NewRegistry()
	}

	// --- Services ---
	authService, err := services.NewAuthService(deps.Stores.Users, cfg.BcryptCost, deps.Events)
	if err != nil {
		return nil, err
	}
	composerService := services.NewComposerService(deps.Stores.Composers)
	personService := services.NewPersonService(deps.Stores.Persons)
	customerService := services.NewCustomerService(deps.Stores.Customers, deps.Locker, deps.Events)
	teamService := services.NewTeamService(deps.Stores.Teams, deps.Locker, deps.Events)

	// --- Handlers ---
	docsHandler, err := handlers.NewDocsHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to load API docs: %w", err)
	}

	app := fiber.New(fiber.Config{AppName: "web-420"})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.Metrics(deps.Registry))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  cfg.StoreDriver,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	docsHandler.RegisterRoutes(app, "/api-docs")

	// --- API Routes ---
	api := app.Group("/api", middleware.StoreTimeout(cfg.StoreTimeout))
	handlers.NewComposerHandler(composerService).RegisterRoutes(api)
	handlers.NewPersonHandler(personService).RegisterRoutes(api)
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewCustomerHandler(customerService).RegisterRoutes(api)
	handlers.NewTeamHandler(teamService).RegisterRoutes(api)

	return app, nil
}
