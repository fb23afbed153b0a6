package services

import (
	"context"

	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"
)

// PersonService handles business logic related to persons.
type PersonService struct {
	repo repositories.Repository[models.Person]
}

// NewPersonService creates a new PersonService.
func NewPersonService(repo repositories.Repository[models.Person]) *PersonService {
	return &PersonService{repo: repo}
}

// GetAllPersons retrieves all persons.
func (s *PersonService) GetAllPersons(ctx context.Context) ([]models.Person, error) {
	return s.repo.FindAll(ctx)
}

// GetPersonByID retrieves a single person by its ID.
func (s *PersonService) GetPersonByID(ctx context.Context, id string) (*models.Person, error) {
	return s.repo.FindByID(ctx, id)
}

// CreatePerson persists a new person. Roles and dependents keep request order.
func (s *PersonService) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.Roles == nil {
		person.Roles = []models.Role{}
	}
	if person.Dependents == nil {
		person.Dependents = []models.Dependent{}
	}
	return s.repo.Create(ctx, person)
}
