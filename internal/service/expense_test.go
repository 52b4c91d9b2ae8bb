package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftstore-backend/internal/domain"
)

type expenseRepoStub struct {
	created []domain.Expense
	deleted []uint
}

func (s *expenseRepoStub) FindAll(_ context.Context) ([]domain.Expense, error) {
	return s.created, nil
}

func (s *expenseRepoStub) Create(_ context.Context, expense domain.Expense) (domain.Expense, error) {
	expense.ID = uint(len(s.created) + 1)
	s.created = append(s.created, expense)
	return expense, nil
}

func (s *expenseRepoStub) Delete(_ context.Context, id uint) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestAddExpense_defaultsDateToToday(t *testing.T) {
	repo := &expenseRepoStub{}
	svc := NewExpenseService(repo)

	created, err := svc.AddExpense(context.Background(), domain.Expense{
		Description: "Gift wrap rolls",
		Amount:      45,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), created.Date)
}

func TestAddExpense_keepsProvidedDate(t *testing.T) {
	repo := &expenseRepoStub{}
	svc := NewExpenseService(repo)

	created, err := svc.AddExpense(context.Background(), domain.Expense{
		Description: "Courier fees",
		Amount:      30,
		Date:        "2026-08-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", created.Date)
}

func TestDeleteExpense(t *testing.T) {
	repo := &expenseRepoStub{}
	svc := NewExpenseService(repo)

	require.NoError(t, svc.DeleteExpense(context.Background(), 3))
	assert.Equal(t, []uint{3}, repo.deleted)
}
