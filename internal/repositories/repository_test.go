package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Team{}, &models.Customer{}))
	return db
}

func teamBackends(t *testing.T) map[string]repositories.Repository[models.Team] {
	return map[string]repositories.Repository[models.Team]{
		"memory": repositories.NewMemoryRepository[models.Team](),
		"gorm":   repositories.NewGORMRepository[models.Team](openSQLite(t)),
	}
}

func TestRepository_CRUD(t *testing.T) {
	for name, repo := range teamBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			hawks := &models.Team{Name: "Hawks", Mascot: "Hawk", Players: []models.Player{}}
			require.NoError(t, repo.Create(ctx, hawks))
			assert.NotEmpty(t, hawks.ID)

			owls := &models.Team{Name: "Owls", Mascot: "Owl", Players: []models.Player{{FirstName: "Al", LastName: "Bo", Salary: 10}}}
			require.NoError(t, repo.Create(ctx, owls))

			all, err := repo.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "Hawks", all[0].Name)
			assert.Equal(t, "Owls", all[1].Name)

			found, err := repo.FindByID(ctx, owls.ID)
			require.NoError(t, err)
			assert.Equal(t, owls.Players, found.Players)

			byName, err := repo.FindOne(ctx, "name", "Hawks")
			require.NoError(t, err)
			assert.Equal(t, hawks.ID, byName.ID)

			found.Players = append(found.Players, models.Player{FirstName: "Cy", LastName: "Do", Salary: 20})
			require.NoError(t, repo.Update(ctx, found))

			reloaded, err := repo.FindByID(ctx, owls.ID)
			require.NoError(t, err)
			require.Len(t, reloaded.Players, 2)
			assert.Equal(t, "Cy", reloaded.Players[1].FirstName)

			removed, err := repo.Delete(ctx, hawks.ID)
			require.NoError(t, err)
			assert.Equal(t, "Hawks", removed.Name)

			_, err = repo.FindByID(ctx, hawks.ID)
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestRepository_NotFound(t *testing.T) {
	for name, repo := range teamBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := repo.FindByID(ctx, "missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
			assert.False(t, repositories.IsStoreFault(err))

			_, err = repo.FindOne(ctx, "name", "nobody")
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			err = repo.Update(ctx, &models.Team{Base: models.Base{ID: "missing"}, Name: "x"})
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			_, err = repo.Delete(ctx, "missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestMemoryRepository_ReturnsIsolatedCopies(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository[models.Customer]()

	c := &models.Customer{FirstName: "Ann", UserName: "ann", Invoices: []models.Invoice{}}
	require.NoError(t, repo.Create(ctx, c))

	first, err := repo.FindOne(ctx, "userName", "ann")
	require.NoError(t, err)
	first.Invoices = append(first.Invoices, models.Invoice{Subtotal: 1})

	second, err := repo.FindOne(ctx, "userName", "ann")
	require.NoError(t, err)
	assert.Empty(t, second.Invoices)
}

func TestStoreError_Wraps(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := fmt.Errorf("loading team: %w", &repositories.StoreError{Op: "find", Collection: "teams", Err: cause})

	assert.True(t, repositories.IsStoreFault(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "find teams: connection reset")
}
