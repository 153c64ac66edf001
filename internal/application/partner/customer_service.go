package partner

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/retail/retailctl/internal/domain/partner"
	"github.com/retail/retailctl/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	validate     *validator.Validate
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		validate:     validator.New(),
	}
}

// Register creates a new customer. The email must be unique.
func (s *CustomerService) Register(ctx context.Context, req RegisterCustomerRequest) (*CustomerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	email := partner.NormalizeEmail(req.Email)
	exists, err := s.customerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Email '%s' already exists", email))
	}

	customer, err := partner.NewCustomer(req.Name, req.Email, req.Phone, req.City)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Update updates a customer's phone and/or city, addressed by email
func (s *CustomerService) Update(ctx context.Context, req UpdateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	customer, err := s.customerRepo.FindByEmail(ctx, partner.NormalizeEmail(req.Email))
	if err != nil {
		if shared.IsCode(err, "NOT_FOUND") {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("No customer found with email '%s'", req.Email))
		}
		return nil, err
	}

	customer.UpdateContact(req.Phone, req.City)
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer addressed by email
func (s *CustomerService) Delete(ctx context.Context, email string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, partner.NormalizeEmail(email))
	if err != nil {
		if shared.IsCode(err, "NOT_FOUND") {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("No customer found with email '%s'", email))
		}
		return nil, err
	}

	if err := s.customerRepo.Delete(ctx, customer.ID); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List returns all customers in registration order
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// Search filters customers by email and/or city; empty filters match all
func (s *CustomerService) Search(ctx context.Context, email, city string) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.Search(ctx, partner.NormalizeEmail(email), city, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}
