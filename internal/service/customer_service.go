package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaidashi/fastfood-api/internal/domain/customer"
	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// CustomerInput holds the editable fields of a customer
type CustomerInput struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerService handles customer registration
type CustomerService struct {
	customers CustomerRepository
	logger    logger.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers CustomerRepository, logger logger.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

func (s *CustomerService) GetAll(ctx context.Context) ([]*models.Customer, error) {
	return s.customers.FindAll(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	if !models.IsObjectID(id) {
		return nil, ErrCustomerIDInvalid
	}

	c, err := s.customers.FindByID(ctx, id)

	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrCustomerInexistent, err)
	}

	return c, err
}

// GetByCPF looks a customer up by CPF, punctuation ignored
func (s *CustomerService) GetByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	if cpf == "" || !customer.ValidCPF(cpf) {
		return nil, customer.ErrCPFInvalid
	}

	c, err := s.customers.FindByCPF(ctx, customer.NormalizeCPF(cpf))

	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrCustomerInexistent, err)
	}

	return c, err
}

// Create registers a customer. A CPF, when given, must be unique.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	if err := customer.Validate(in.Name, in.CPF); err != nil {
		return nil, err
	}

	cpf := customer.NormalizeCPF(in.CPF)

	if cpf != "" {
		_, err := s.customers.FindByCPF(ctx, cpf)

		switch {
		case err == nil:
			return nil, ErrCPFAlreadyRegistered
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		}
	}

	c := models.NewCustomer(in.Name, cpf, in.Email, in.Phone)

	if err := s.customers.Persist(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureInsert, err)
	}

	s.logger.Info("Customer created", "customerID", c.ID)
	return c, nil
}

// Update replaces a customer's editable fields
func (s *CustomerService) Update(ctx context.Context, id string, in CustomerInput) (*models.Customer, error) {
	current, err := s.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if err := customer.Validate(in.Name, in.CPF); err != nil {
		return nil, err
	}

	current.Name = in.Name
	current.CPF = customer.NormalizeCPF(in.CPF)
	current.Email = in.Email
	current.Phone = in.Phone

	updated, err := s.customers.Update(ctx, current)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	return updated, nil
}

func (s *CustomerService) Remove(ctx context.Context, id string) error {
	if err := s.customers.Remove(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrIDInexistent, err)
	}
	return nil
}
