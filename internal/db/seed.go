package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"giftstore-backend/internal/repository/dao"
)

var defaultCategories = []dao.Category{
	{Name: "Romantic Gifts", Description: "Gifts for couples and loved ones"},
	{Name: "Kids Gifts", Description: "Toys and gifts for children"},
	{Name: "Men's Gifts", Description: "Gifts for men"},
	{Name: "Women's Gifts", Description: "Gifts for women"},
	{Name: "Occasion Gifts", Description: "Gifts for special occasions"},
	{Name: "Accessories", Description: "Assorted accessories"},
	{Name: "Other", Description: "Everything else"},
}

var sampleProducts = []dao.Product{
	{Name: "Red Rose Bouquet", Category: "Romantic Gifts", Price: 150.0, Cost: 80.0, Stock: 20, MinStock: 5, Description: "A beautiful bouquet of red roses"},
	{Name: "Giant Teddy Bear", Category: "Kids Gifts", Price: 200.0, Cost: 120.0, Stock: 15, MinStock: 3, Description: "A big soft teddy bear"},
	{Name: "Men's Watch", Category: "Men's Gifts", Price: 500.0, Cost: 300.0, Stock: 10, MinStock: 2, Description: "An elegant men's watch"},
	{Name: "Women's Perfume", Category: "Women's Gifts", Price: 300.0, Cost: 180.0, Stock: 25, MinStock: 5, Description: "A luxurious women's perfume"},
	{Name: "Premium Chocolate", Category: "Occasion Gifts", Price: 100.0, Cost: 60.0, Stock: 50, MinStock: 10, Description: "Fine Belgian chocolate"},
}

// Seed inserts the default categories and sample products. Safe to run
// on every startup: categories dedupe on their unique name and products
// are only inserted into an empty catalog.
func Seed(conn *gorm.DB) error {
	result := conn.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaultCategories)
	if result.Error != nil {
		return fmt.Errorf("seed categories -> %w", result.Error)
	}

	var count int64
	if err := conn.Model(&dao.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products -> %w", err)
	}
	if count == 0 {
		if err := conn.Create(&sampleProducts).Error; err != nil {
			return fmt.Errorf("seed products -> %w", err)
		}
	}

	return nil
}
