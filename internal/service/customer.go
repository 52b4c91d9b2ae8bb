package service

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository"
)

var ErrCustomerNotFound = repository.ErrCustomerNotFound

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id uint) (domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
}

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return customers, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) AddCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
