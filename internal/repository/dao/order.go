package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type Order struct {
	ID            uint `gorm:"primaryKey"`
	CustomerID    *uint
	Customer      *Customer `gorm:"foreignKey:CustomerID"`
	TotalAmount   float64   `gorm:"not null"`
	Discount      float64   `gorm:"default:0"`
	FinalAmount   float64   `gorm:"not null"`
	Status        string    `gorm:"default:pending"`
	PaymentMethod string
	Notes         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey"`
	OrderID    uint    `gorm:"not null;index"`
	ProductID  uint    `gorm:"not null"`
	Product    Product `gorm:"foreignKey:ProductID"`
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"`
	TotalPrice float64 `gorm:"not null"`
}

// OrderListRow is one row of the order listing, with the customer name
// joined in.
type OrderListRow struct {
	ID            uint
	CustomerName  string
	TotalAmount   float64
	Discount      float64
	FinalAmount   float64
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
}

// OrderDetailRow is the order joined with its customer's contact fields.
type OrderDetailRow struct {
	ID              uint
	CustomerID      *uint
	TotalAmount     float64
	Discount        float64
	FinalAmount     float64
	Status          string
	PaymentMethod   string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
}

// OrderItemRow is a line item joined with its product name.
type OrderItemRow struct {
	ID          uint
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
}

type SalesSummaryRow struct {
	TotalOrders int64
	TotalSales  float64
}

type TopProductRow struct {
	Name         string
	TotalSold    int64
	TotalRevenue float64
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// Insert computes final_amount = total_amount - discount at creation
// time; it is never re-derived afterwards. A discount larger than the
// total yields a negative final amount and is stored as-is.
func (d *OrderDAO) Insert(ctx context.Context, order Order) (Order, error) {
	order.FinalAmount = order.TotalAmount - order.Discount
	if order.Status == "" {
		order.Status = "pending"
	}

	result := d.db.WithContext(ctx).Create(&order)
	if result.Error != nil {
		return Order{}, result.Error
	}

	return order, nil
}

// InsertItem computes total_price = quantity * unit_price.
func (d *OrderDAO) InsertItem(ctx context.Context, item OrderItem) (OrderItem, error) {
	item.TotalPrice = float64(item.Quantity) * item.UnitPrice

	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return OrderItem{}, result.Error
	}

	return item, nil
}

func (d *OrderDAO) FindAll(ctx context.Context) ([]OrderListRow, error) {
	var rows []OrderListRow
	result := d.db.WithContext(ctx).
		Model(&Order{}).
		Select("orders.id, customers.name AS customer_name, orders.total_amount, orders.discount, orders.final_amount, orders.status, orders.payment_method, orders.created_at").
		Joins("LEFT JOIN customers ON orders.customer_id = customers.id").
		Order("orders.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *OrderDAO) GetByID(ctx context.Context, id uint) (OrderDetailRow, error) {
	var row OrderDetailRow
	result := d.db.WithContext(ctx).
		Model(&Order{}).
		Select("orders.*, customers.name AS customer_name, customers.phone AS customer_phone, customers.email AS customer_email, customers.address AS customer_address").
		Joins("LEFT JOIN customers ON orders.customer_id = customers.id").
		Where("orders.id = ?", id).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return OrderDetailRow{}, ErrOrderNotFound
		}

		return OrderDetailRow{}, result.Error
	}

	return row, nil
}

func (d *OrderDAO) FindItems(ctx context.Context, orderID uint) ([]OrderItemRow, error) {
	var rows []OrderItemRow
	result := d.db.WithContext(ctx).
		Model(&OrderItem{}).
		Select("order_items.id, order_items.product_id, products.name AS product_name, order_items.quantity, order_items.unit_price, order_items.total_price").
		Joins("JOIN products ON order_items.product_id = products.id").
		Where("order_items.order_id = ?", orderID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// UpdateStatus overwrites the status unconditionally; any string is
// accepted, there is no transition validation.
func (d *OrderDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ?", id).
		Update("status", status)

	return result.Error
}

// SalesSummary counts orders and sums their final amounts. The date
// filter is applied only when both bounds are given and compares
// calendar dates inclusively.
func (d *OrderDAO) SalesSummary(ctx context.Context, startDate, endDate string) (SalesSummaryRow, error) {
	query := d.db.WithContext(ctx).
		Model(&Order{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(final_amount), 0) AS total_sales")

	if startDate != "" && endDate != "" {
		query = query.Where("DATE(created_at) BETWEEN ? AND ?", startDate, endDate)
	}

	var row SalesSummaryRow
	result := query.Scan(&row)
	if result.Error != nil {
		return SalesSummaryRow{}, result.Error
	}

	return row, nil
}

func (d *OrderDAO) TopSelling(ctx context.Context, limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	result := d.db.WithContext(ctx).
		Model(&OrderItem{}).
		Select("products.name, SUM(order_items.quantity) AS total_sold, SUM(order_items.total_price) AS total_revenue").
		Joins("JOIN products ON order_items.product_id = products.id").
		Group("products.id, products.name").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
