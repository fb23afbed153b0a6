package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"
	"github.com/JojerDojer/web-420/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestComposerService_GetAllComposers(t *testing.T) {
	mockRepo := new(MockRepository[models.Composer])
	service := services.NewComposerService(mockRepo)

	expected := []models.Composer{
		{Base: models.Base{ID: "1"}, FirstName: "Johann", LastName: "Bach"},
		{Base: models.Base{ID: "2"}, FirstName: "Clara", LastName: "Schumann"},
	}
	mockRepo.On("FindAll", mock.Anything).Return(expected, nil).Once()

	composers, err := service.GetAllComposers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, composers)
	mockRepo.AssertExpectations(t)
}

func TestComposerService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	service := services.NewComposerService(repositories.NewMemoryRepository[models.Composer]())

	composer := &models.Composer{FirstName: "Ludwig", LastName: "Beethoven"}
	require.NoError(t, service.CreateComposer(ctx, composer))
	require.NotEmpty(t, composer.ID)

	found, err := service.GetComposerByID(ctx, composer.ID)
	require.NoError(t, err)
	assert.Equal(t, composer.ID, found.ID)
	assert.Equal(t, "Ludwig", found.FirstName)
	assert.Equal(t, "Beethoven", found.LastName)
}

func TestComposerService_UpdateComposer(t *testing.T) {
	ctx := context.Background()
	service := services.NewComposerService(repositories.NewMemoryRepository[models.Composer]())

	composer := &models.Composer{FirstName: "Wolfgang", LastName: "Mozart"}
	require.NoError(t, service.CreateComposer(ctx, composer))

	updated, err := service.UpdateComposer(ctx, composer.ID, "W. A.", "Mozart")
	require.NoError(t, err)
	assert.Equal(t, "W. A.", updated.FirstName)

	_, err = service.UpdateComposer(ctx, "missing", "a", "b")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestComposerService_DeleteComposer(t *testing.T) {
	mockRepo := new(MockRepository[models.Composer])
	service := services.NewComposerService(mockRepo)

	mockRepo.On("Delete", mock.Anything, "1").Return(&models.Composer{Base: models.Base{ID: "1"}}, nil).Once()
	deleted, err := service.DeleteComposer(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, "1", deleted.ID)

	mockRepo.On("Delete", mock.Anything, "99").Return(nil, fmt.Errorf("composers with id 99: %w", repositories.ErrNotFound)).Once()
	_, err = service.DeleteComposer(context.Background(), "99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestPersonService_CreatePersonKeepsOrder(t *testing.T) {
	ctx := context.Background()
	service := services.NewPersonService(repositories.NewMemoryRepository[models.Person]())

	person := &models.Person{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Roles:      []models.Role{{Text: "writer"}, {Text: "mathematician"}},
		Dependents: []models.Dependent{{FirstName: "Byron", LastName: "King"}},
		BirthDate:  "1815-12-10",
	}
	require.NoError(t, service.CreatePerson(ctx, person))

	all, err := service.GetAllPersons(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, person.Roles, all[0].Roles)
	assert.Equal(t, person.Dependents, all[0].Dependents)
}
