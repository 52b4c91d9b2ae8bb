package service

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository"
)

var (
	ErrProductNotFound    = repository.ErrProductNotFound
	ErrCategoryNameExists = repository.ErrCategoryNameExists
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id uint) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id uint) error
	SetStock(ctx context.Context, id uint, newStock int) error
	FindLowStock(ctx context.Context) ([]domain.LowStockProduct, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
}

// CatalogService covers products and categories.
type CatalogService struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
}

func NewCatalogService(productRepo ProductRepository, categoryRepo CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.productRepo.FindAll -> %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *CatalogService) AddProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.productRepo.Create -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) error {
	if err := s.productRepo.Update(ctx, product); err != nil {
		return fmt.Errorf("s.productRepo.Update -> %w", err)
	}

	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.productRepo.Delete -> %w", err)
	}

	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.categoryRepo.FindAll -> %w", err)
	}

	return categories, nil
}

func (s *CatalogService) AddCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	return s.categoryRepo.Create(ctx, category)
}
