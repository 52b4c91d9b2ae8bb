package repository

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository/dao"
)

var ErrCustomerNotFound = dao.ErrCustomerNotFound

type CustomerDAO interface {
	FindAll(ctx context.Context) ([]dao.Customer, error)
	GetByID(ctx context.Context, id uint) (dao.Customer, error)
	Insert(ctx context.Context, customer dao.Customer) (dao.Customer, error)
}

type CustomerRepository struct {
	dao CustomerDAO
}

func NewCustomerRepository(dao CustomerDAO) *CustomerRepository {
	return &CustomerRepository{
		dao: dao,
	}
}

func (r *CustomerRepository) customerDaoToDomain(c dao.Customer) domain.Customer {
	return domain.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	customers := make([]domain.Customer, len(rows))
	for i, row := range rows {
		customers[i] = r.customerDaoToDomain(row)
	}

	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (domain.Customer, error) {
	row, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	return r.customerDaoToDomain(row), nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	created, err := r.dao.Insert(ctx, dao.Customer{
		Name:    customer.Name,
		Phone:   customer.Phone,
		Email:   customer.Email,
		Address: customer.Address,
	})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.customerDaoToDomain(created), nil
}
