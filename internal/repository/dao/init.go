package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Product{},
		&Customer{},
		&Order{},
		&OrderItem{},
		&Expense{},
		&InventoryMovement{},
	)
}
