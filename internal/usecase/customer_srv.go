package usecase

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	RegisterCustomer(ctx context.Context, req *request.RegisterCustomerRequest) (*response.CustomerResponse, error)
	GetCustomerByID(ctx context.Context, customerID int64) (*response.CustomerResponse, error)
	GetCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error)
	SearchCustomers(ctx context.Context, term string) ([]response.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID int64, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(
	repo *repository.Repository,
	log *zap.Logger,
) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) RegisterCustomer(ctx context.Context, req *request.RegisterCustomerRequest) (*response.CustomerResponse, error) {
	existing, err := s.repo.Customer.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	customer := &entity.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if req.BirthDate != nil {
		birth, err := utils.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		customer.BirthDate = &birth
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer registered",
		zap.Int64("customer_id", customer.ID),
		zap.String("email", customer.Email),
	)

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*response.CustomerResponse, error) {
	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error) {
	customers, err := s.repo.Customer.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}

	total, err := s.repo.Customer.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	return response.NewPaginatedResponse(response.CustomersToResponse(customers), req.Page, req.Limit(), total), nil
}

func (s *customerService) SearchCustomers(ctx context.Context, term string) ([]response.CustomerResponse, error) {
	customers, err := s.repo.Customer.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return response.CustomersToResponse(customers), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	if req.Email != nil && *req.Email != customer.Email {
		existing, err := s.repo.Customer.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		customer.Email = *req.Email
	}
	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.BirthDate != nil {
		birth, err := utils.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		customer.BirthDate = &birth
	}

	if err := s.repo.Customer.Update(ctx, customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer not found")
	}

	if err := s.repo.Customer.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	s.log.Info("Customer deleted", zap.Int64("customer_id", customerID))
	return nil
}
