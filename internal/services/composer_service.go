package services

import (
	"context"

	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"
)

// ComposerService handles business logic related to composers.
type ComposerService struct {
	repo repositories.Repository[models.Composer]
}

// NewComposerService creates a new ComposerService.
func NewComposerService(repo repositories.Repository[models.Composer]) *ComposerService {
	return &ComposerService{repo: repo}
}

// GetAllComposers retrieves all composers.
func (s *ComposerService) GetAllComposers(ctx context.Context) ([]models.Composer, error) {
	return s.repo.FindAll(ctx)
}

// GetComposerByID retrieves a single composer by its ID.
func (s *ComposerService) GetComposerByID(ctx context.Context, id string) (*models.Composer, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateComposer persists a new composer and assigns its ID.
func (s *ComposerService) CreateComposer(ctx context.Context, composer *models.Composer) error {
	return s.repo.Create(ctx, composer)
}

// UpdateComposer overwrites the names of an existing composer.
func (s *ComposerService) UpdateComposer(ctx context.Context, id, firstName, lastName string) (*models.Composer, error) {
	composer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	composer.FirstName = firstName
	composer.LastName = lastName
	if err := s.repo.Update(ctx, composer); err != nil {
		return nil, err
	}
	return composer, nil
}

// DeleteComposer removes a composer and returns the deleted document.
func (s *ComposerService) DeleteComposer(ctx context.Context, id string) (*models.Composer, error) {
	return s.repo.Delete(ctx, id)
}
