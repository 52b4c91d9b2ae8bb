package repository

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository/dao"
)

var ErrProductNotFound = dao.ErrProductNotFound

type ProductDAO interface {
	FindAll(ctx context.Context) ([]dao.Product, error)
	GetByID(ctx context.Context, id uint) (dao.Product, error)
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	Update(ctx context.Context, product dao.Product) error
	Delete(ctx context.Context, id uint) error
	UpdateStock(ctx context.Context, id uint, newStock int) error
	FindLowStock(ctx context.Context) ([]dao.Product, error)
}

type ProductRepository struct {
	dao ProductDAO
}

func NewProductRepository(dao ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: dao,
	}
}

func (r *ProductRepository) productDomainToDao(p domain.Product) dao.Product {
	return dao.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProductRepository) productDaoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = r.productDaoToDomain(row)
	}

	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (domain.Product, error) {
	row, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	return r.productDaoToDomain(row), nil
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, r.productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.productDaoToDomain(created), nil
}

func (r *ProductRepository) Update(ctx context.Context, product domain.Product) error {
	if err := r.dao.Update(ctx, r.productDomainToDao(product)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProductRepository) SetStock(ctx context.Context, id uint, newStock int) error {
	if err := r.dao.UpdateStock(ctx, id, newStock); err != nil {
		return fmt.Errorf("r.dao.UpdateStock -> %w", err)
	}

	return nil
}

func (r *ProductRepository) FindLowStock(ctx context.Context) ([]domain.LowStockProduct, error) {
	rows, err := r.dao.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLowStock -> %w", err)
	}

	products := make([]domain.LowStockProduct, len(rows))
	for i, row := range rows {
		products[i] = domain.LowStockProduct{
			ID:           row.ID,
			Name:         row.Name,
			Category:     row.Category,
			CurrentStock: row.Stock,
			MinStock:     row.MinStock,
		}
	}

	return products, nil
}
