package handlers

import (
	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers and their invoices.
type CustomerHandler struct {
	service  *services.CustomerService
	validate *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: newValidator(),
	}
}

// CustomerRequest is the body of POST /customers.
type CustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Post("/:username/invoices", h.HandleCreateInvoice)
	customerRoutes.Get("/:username/invoices", h.HandleFindAllInvoices)
}

// HandleCreateCustomer creates a customer with no invoices.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req CustomerRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondBodyError(c, err)
	}

	customer := &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	}
	if err := h.service.CreateCustomer(c.UserContext(), customer); err != nil {
		return respondFault(c, "create customer", err)
	}
	return c.Status(fiber.StatusOK).JSON(customer)
}

// HandleCreateInvoice appends an invoice to a customer and returns it.
func (h *CustomerHandler) HandleCreateInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := parseBody(c, h.validate, &invoice); err != nil {
		return respondBodyError(c, err)
	}

	created, err := h.service.CreateInvoice(c.UserContext(), c.Params("username"), invoice)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, fiber.StatusNotFound, "Invalid username", err)
		}
		return respondFault(c, "create invoice", err)
	}
	return c.JSON(created)
}

// HandleFindAllInvoices lists a customer's invoices.
func (h *CustomerHandler) HandleFindAllInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.GetInvoices(c.UserContext(), c.Params("username"))
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, fiber.StatusNotFound, "Invalid username", err)
		}
		return respondFault(c, "find invoices", err)
	}
	return c.JSON(invoices)
}
