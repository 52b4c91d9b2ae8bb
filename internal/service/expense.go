package service

import (
	"context"
	"fmt"
	"time"

	"giftstore-backend/internal/domain"
)

type ExpenseRepository interface {
	FindAll(ctx context.Context) ([]domain.Expense, error)
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id uint) error
}

type ExpenseService struct {
	repo ExpenseRepository
}

func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		repo: repo,
	}
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return expenses, nil
}

// AddExpense defaults the date to the current day when it is omitted.
func (s *ExpenseService) AddExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	if expense.Date == "" {
		expense.Date = time.Now().Format("2006-01-02")
	}

	created, err := s.repo.Create(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
