package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	ID          uint    `gorm:"primaryKey"`
	Description string  `gorm:"not null"`
	Amount      float64 `gorm:"not null"`
	Category    string
	Date        string `gorm:"not null"` // calendar date, YYYY-MM-DD

	CreatedAt time.Time
}

type ExpenseDAO struct {
	db *gorm.DB
}

func NewExpenseDAO(db *gorm.DB) *ExpenseDAO {
	return &ExpenseDAO{
		db: db,
	}
}

func (d *ExpenseDAO) FindAll(ctx context.Context) ([]Expense, error) {
	var expenses []Expense
	result := d.db.WithContext(ctx).Order("date DESC").Find(&expenses)
	if result.Error != nil {
		return nil, result.Error
	}

	return expenses, nil
}

func (d *ExpenseDAO) Insert(ctx context.Context, expense Expense) (Expense, error) {
	result := d.db.WithContext(ctx).Create(&expense)
	if result.Error != nil {
		return Expense{}, result.Error
	}

	return expense, nil
}

func (d *ExpenseDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Expense{}, id)

	return result.Error
}
