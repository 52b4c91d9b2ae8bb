package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type Customer struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Phone   string
	Email   string
	Address string

	CreatedAt time.Time
}

type CustomerDAO struct {
	db *gorm.DB
}

func NewCustomerDAO(db *gorm.DB) *CustomerDAO {
	return &CustomerDAO{
		db: db,
	}
}

func (d *CustomerDAO) FindAll(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	result := d.db.WithContext(ctx).Order("name").Find(&customers)
	if result.Error != nil {
		return nil, result.Error
	}

	return customers, nil
}

func (d *CustomerDAO) GetByID(ctx context.Context, id uint) (Customer, error) {
	var customer Customer
	result := d.db.WithContext(ctx).First(&customer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Customer{}, ErrCustomerNotFound
		}

		return Customer{}, result.Error
	}

	return customer, nil
}

func (d *CustomerDAO) Insert(ctx context.Context, customer Customer) (Customer, error) {
	result := d.db.WithContext(ctx).Create(&customer)
	if result.Error != nil {
		return Customer{}, result.Error
	}

	return customer, nil
}
