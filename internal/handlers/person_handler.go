package handlers

import (
	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PersonHandler handles HTTP requests for persons.
type PersonHandler struct {
	service  *services.PersonService
	validate *validator.Validate
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(service *services.PersonService) *PersonHandler {
	return &PersonHandler{
		service:  service,
		validate: newValidator(),
	}
}

// PersonRequest is the body of POST /persons.
type PersonRequest struct {
	FirstName  string             `json:"firstName" validate:"required"`
	LastName   string             `json:"lastName" validate:"required"`
	Roles      []models.Role      `json:"roles" validate:"required"`
	Dependents []models.Dependent `json:"dependents" validate:"required"`
	BirthDate  string             `json:"birthDate" validate:"required"`
}

// RegisterRoutes registers the person routes with the Fiber app.
func (h *PersonHandler) RegisterRoutes(router fiber.Router) {
	personRoutes := router.Group("/persons")
	personRoutes.Get("/", h.HandleFindAllPersons)
	personRoutes.Get("/:id", h.HandleFindPersonByID)
	personRoutes.Post("/", h.HandleCreatePerson)
}

// HandleFindAllPersons returns every person.
func (h *PersonHandler) HandleFindAllPersons(c *fiber.Ctx) error {
	persons, err := h.service.GetAllPersons(c.UserContext())
	if err != nil {
		return respondFault(c, "find all persons", err)
	}
	return c.JSON(persons)
}

// HandleFindPersonByID behaves like the composer lookup: null body on a miss.
func (h *PersonHandler) HandleFindPersonByID(c *fiber.Ctx) error {
	person, err := h.service.GetPersonByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusOK).JSON(nil)
		}
		return respondFault(c, "find person by id", err)
	}
	return c.JSON(person)
}

// HandleCreatePerson creates a new person.
func (h *PersonHandler) HandleCreatePerson(c *fiber.Ctx) error {
	var req PersonRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondBodyError(c, err)
	}

	person := &models.Person{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Roles:      req.Roles,
		Dependents: req.Dependents,
		BirthDate:  req.BirthDate,
	}
	if err := h.service.CreatePerson(c.UserContext(), person); err != nil {
		return respondFault(c, "create person", err)
	}
	return c.Status(fiber.StatusOK).JSON(person)
}
