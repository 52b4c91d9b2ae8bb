package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// InventoryMovement is an advisory audit record of a stock change. It is
// never read back to recompute stock.
type InventoryMovement struct {
	ID           uint    `gorm:"primaryKey"`
	ProductID    uint    `gorm:"not null;index"`
	Product      Product `gorm:"foreignKey:ProductID"`
	MovementType string  `gorm:"not null"` // "in" or "out"
	Quantity     int     `gorm:"not null"`
	Reason       string
	ReferenceID  *uint // order id when the movement comes from a sale

	CreatedAt time.Time
}

type InventoryMovementDAO struct {
	db *gorm.DB
}

func NewInventoryMovementDAO(db *gorm.DB) *InventoryMovementDAO {
	return &InventoryMovementDAO{
		db: db,
	}
}

func (d *InventoryMovementDAO) Insert(ctx context.Context, movement InventoryMovement) (InventoryMovement, error) {
	result := d.db.WithContext(ctx).Create(&movement)
	if result.Error != nil {
		return InventoryMovement{}, result.Error
	}

	return movement, nil
}

func (d *InventoryMovementDAO) FindByProduct(ctx context.Context, productID uint) ([]InventoryMovement, error) {
	var movements []InventoryMovement
	result := d.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&movements)
	if result.Error != nil {
		return nil, result.Error
	}

	return movements, nil
}
