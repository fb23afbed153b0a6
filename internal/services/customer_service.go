package services

import (
	"context"

	"github.com/JojerDojer/web-420/internal/keylock"
	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"
)

// CustomerService manages customers and their embedded invoices.
type CustomerService struct {
	repo   repositories.Repository[models.Customer]
	locker keylock.Locker
	events EventPublisher
}

// NewCustomerService creates a new CustomerService. A nil locker leaves
// concurrent invoice appends unserialized.
func NewCustomerService(repo repositories.Repository[models.Customer], locker keylock.Locker, events EventPublisher) *CustomerService {
	if locker == nil {
		locker = keylock.Noop{}
	}
	return &CustomerService{repo: repo, locker: locker, events: events}
}

// CreateCustomer persists a new customer with no invoices.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.Invoices == nil {
		customer.Invoices = []models.Invoice{}
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return err
	}
	publish(ctx, s.events, EventCustomerCreated, map[string]any{
		"id":       customer.ID,
		"userName": customer.UserName,
	})
	return nil
}

// CreateInvoice appends invoice to the customer identified by userName and
// returns the appended invoice.
func (s *CustomerService) CreateInvoice(ctx context.Context, userName string, invoice models.Invoice) (*models.Invoice, error) {
	if invoice.LineItems == nil {
		invoice.LineItems = []models.LineItem{}
	}
	customer, err := appendEmbedded(ctx, s.repo, s.locker, "userName", userName, "invoices", invoice,
		func(c *models.Customer, inv models.Invoice) { c.Invoices = append(c.Invoices, inv) })
	if err != nil {
		return nil, err
	}
	created := customer.Invoices[len(customer.Invoices)-1]

	publish(ctx, s.events, EventInvoiceCreated, map[string]any{
		"userName": userName,
		"invoice":  created,
	})
	return &created, nil
}

// GetInvoices returns the invoices of the customer identified by userName.
func (s *CustomerService) GetInvoices(ctx context.Context, userName string) ([]models.Invoice, error) {
	return listEmbedded(ctx, s.repo, "userName", userName,
		func(c *models.Customer) []models.Invoice { return c.Invoices })
}
