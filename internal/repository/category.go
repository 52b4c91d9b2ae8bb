package repository

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository/dao"
)

var ErrCategoryNameExists = dao.ErrCategoryNameExists

type CategoryDAO interface {
	FindAll(ctx context.Context) ([]dao.Category, error)
	Insert(ctx context.Context, category dao.Category) (dao.Category, error)
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) categoryDaoToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = r.categoryDaoToDomain(row)
	}

	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, dao.Category{
		Name:        category.Name,
		Description: category.Description,
	})
	if err != nil {
		return domain.Category{}, err
	}

	return r.categoryDaoToDomain(created), nil
}
