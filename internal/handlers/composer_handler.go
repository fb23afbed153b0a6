package handlers

import (
	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ComposerHandler handles HTTP requests for composers.
type ComposerHandler struct {
	service  *services.ComposerService
	validate *validator.Validate
}

// NewComposerHandler creates a new ComposerHandler.
func NewComposerHandler(service *services.ComposerService) *ComposerHandler {
	return &ComposerHandler{
		service:  service,
		validate: newValidator(),
	}
}

// ComposerRequest is the body of create and update requests.
type ComposerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// RegisterRoutes registers the composer routes with the Fiber app.
func (h *ComposerHandler) RegisterRoutes(router fiber.Router) {
	composerRoutes := router.Group("/composers")
	composerRoutes.Get("/", h.HandleFindAllComposers)
	composerRoutes.Get("/:id", h.HandleFindComposerByID)
	composerRoutes.Post("/", h.HandleCreateComposer)
	composerRoutes.Put("/:id", h.HandleUpdateComposer)
	composerRoutes.Delete("/:id", h.HandleDeleteComposer)
}

// HandleFindAllComposers returns every composer.
func (h *ComposerHandler) HandleFindAllComposers(c *fiber.Ctx) error {
	composers, err := h.service.GetAllComposers(c.UserContext())
	if err != nil {
		return respondFault(c, "find all composers", err)
	}
	return c.JSON(composers)
}

// HandleFindComposerByID returns a composer, or a null body when the id
// matches nothing. Existing clients rely on the 200.
func (h *ComposerHandler) HandleFindComposerByID(c *fiber.Ctx) error {
	composer, err := h.service.GetComposerByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusOK).JSON(nil)
		}
		return respondFault(c, "find composer by id", err)
	}
	return c.JSON(composer)
}

// HandleCreateComposer creates a new composer.
func (h *ComposerHandler) HandleCreateComposer(c *fiber.Ctx) error {
	var req ComposerRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondBodyError(c, err)
	}

	composer := &models.Composer{FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.CreateComposer(c.UserContext(), composer); err != nil {
		return respondFault(c, "create composer", err)
	}
	return c.Status(fiber.StatusCreated).JSON(composer)
}

// HandleUpdateComposer overwrites the names of an existing composer.
func (h *ComposerHandler) HandleUpdateComposer(c *fiber.Ctx) error {
	var req ComposerRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondBodyError(c, err)
	}

	composer, err := h.service.UpdateComposer(c.UserContext(), c.Params("id"), req.FirstName, req.LastName)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, fiber.StatusUnauthorized, "Invalid composerId", err)
		}
		return respondFault(c, "update composer", err)
	}
	return c.JSON(composer)
}

// HandleDeleteComposer removes a composer and returns it.
func (h *ComposerHandler) HandleDeleteComposer(c *fiber.Ctx) error {
	composer, err := h.service.DeleteComposer(c.UserContext(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, fiber.StatusUnauthorized, "Invalid composerId", err)
		}
		return respondFault(c, "delete composer", err)
	}
	return c.JSON(composer)
}
