package repository

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository/dao"
)

type ExpenseDAO interface {
	FindAll(ctx context.Context) ([]dao.Expense, error)
	Insert(ctx context.Context, expense dao.Expense) (dao.Expense, error)
	Delete(ctx context.Context, id uint) error
}

type ExpenseRepository struct {
	dao ExpenseDAO
}

func NewExpenseRepository(dao ExpenseDAO) *ExpenseRepository {
	return &ExpenseRepository{
		dao: dao,
	}
}

func (r *ExpenseRepository) expenseDaoToDomain(e dao.Expense) domain.Expense {
	return domain.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

func (r *ExpenseRepository) FindAll(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	expenses := make([]domain.Expense, len(rows))
	for i, row := range rows {
		expenses[i] = r.expenseDaoToDomain(row)
	}

	return expenses, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	created, err := r.dao.Insert(ctx, dao.Expense{
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Date:        expense.Date,
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.expenseDaoToDomain(created), nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
