// Package database opens the configured document store and builds the
// repositories every service depends on.
package database

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/JojerDojer/web-420/internal/config"
	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Stores bundles one repository per collection.
type Stores struct {
	Composers repositories.Repository[models.Composer]
	Persons   repositories.Repository[models.Person]
	Users     repositories.Repository[models.User]
	Customers repositories.Repository[models.Customer]
	Teams     repositories.Repository[models.Team]

	close func(ctx context.Context) error
}

// Close releases the store connection, if any.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// AllModels lists every collection model, for schema migration.
func AllModels() []any {
	return []any{&models.Composer{}, &models.Person{}, &models.User{}, &models.Customer{}, &models.Team{}}
}

// Open connects to the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case config.DriverPostgres:
		return OpenGORM(postgres.Open(cfg.DatabaseDSN))
	case config.DriverSQLite:
		return OpenGORM(sqlite.Open(cfg.DatabaseDSN))
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// OpenMongo connects to MongoDB and ensures the userName lookup indexes.
func OpenMongo(ctx context.Context, uri, dbName string) (*Stores, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	db := client.Database(dbName)

	users := repositories.NewMongoRepository[models.User](db)
	customers := repositories.NewMongoRepository[models.Customer](db)
	if err := users.EnsureIndexes(ctx, "userName"); err != nil {
		slog.Warn("could not create users index", "error", err)
	}
	if err := customers.EnsureIndexes(ctx, "userName"); err != nil {
		slog.Warn("could not create customers index", "error", err)
	}

	slog.Info("Connection to MongoDB database was successful", "database", dbName)
	return &Stores{
		Composers: repositories.NewMongoRepository[models.Composer](db),
		Persons:   repositories.NewMongoRepository[models.Person](db),
		Users:     users,
		Customers: customers,
		Teams:     repositories.NewMongoRepository[models.Team](db),
		close:     client.Disconnect,
	}, nil
}

// OpenGORM opens a relational store and migrates the document tables.
func OpenGORM(dialector gorm.Dialector) (*Stores, error) {
	gormLogger := logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true, // misses are answered, not failures
	})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}

	slog.Info("Connection to database was successful", "dialect", dialector.Name())
	return &Stores{
		Composers: repositories.NewGORMRepository[models.Composer](db),
		Persons:   repositories.NewGORMRepository[models.Person](db),
		Users:     repositories.NewGORMRepository[models.User](db),
		Customers: repositories.NewGORMRepository[models.Customer](db),
		Teams:     repositories.NewGORMRepository[models.Team](db),
		close:     func(context.Context) error { return sqlDB.Close() },
	}, nil
}

// NewMemory builds process-local stores, used for tests and local runs.
func NewMemory() *Stores {
	return &Stores{
		Composers: repositories.NewMemoryRepository[models.Composer](),
		Persons:   repositories.NewMemoryRepository[models.Person](),
		Users:     repositories.NewMemoryRepository[models.User](),
		Customers: repositories.NewMemoryRepository[models.Customer](),
		Teams:     repositories.NewMemoryRepository[models.Team](),
	}
}
