package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Category    string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Cost        float64 `gorm:"not null"`
	Stock       int     `gorm:"not null;default:0"`
	MinStock    int     `gorm:"not null;default:5"`
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product
	result := d.db.WithContext(ctx).Order("name").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) GetByID(ctx context.Context, id uint) (Product, error) {
	var product Product
	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

// Update overwrites every user-settable column, including zero values.
func (d *ProductDAO) Update(ctx context.Context, product Product) error {
	result := d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", product.ID).
		Select("Name", "Category", "Price", "Cost", "Stock", "MinStock", "Description").
		Updates(product)

	return result.Error
}

func (d *ProductDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Product{}, id)

	return result.Error
}

// UpdateStock writes the given stock value as-is. Negative values are
// stored without complaint; the caller owns the arithmetic.
func (d *ProductDAO) UpdateStock(ctx context.Context, id uint, newStock int) error {
	result := d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", id).
		Update("stock", newStock)

	return result.Error
}

func (d *ProductDAO) FindLowStock(ctx context.Context) ([]Product, error) {
	var products []Product
	result := d.db.WithContext(ctx).
		Where("stock <= min_stock").
		Order("stock ASC").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}
