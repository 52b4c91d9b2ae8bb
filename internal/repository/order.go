package repository

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

type OrderDAO interface {
	Insert(ctx context.Context, order dao.Order) (dao.Order, error)
	InsertItem(ctx context.Context, item dao.OrderItem) (dao.OrderItem, error)
	FindAll(ctx context.Context) ([]dao.OrderListRow, error)
	GetByID(ctx context.Context, id uint) (dao.OrderDetailRow, error)
	FindItems(ctx context.Context, orderID uint) ([]dao.OrderItemRow, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	SalesSummary(ctx context.Context, startDate, endDate string) (dao.SalesSummaryRow, error)
	TopSelling(ctx context.Context, limit int) ([]dao.TopProductRow, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

func (r *OrderRepository) orderDaoToDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		TotalAmount:   o.TotalAmount,
		Discount:      o.Discount,
		FinalAmount:   o.FinalAmount,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// Create inserts the order row; final_amount is computed at the DAO
// level as total_amount - discount.
func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := r.dao.Insert(ctx, dao.Order{
		CustomerID:    order.CustomerID,
		TotalAmount:   order.TotalAmount,
		Discount:      order.Discount,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.orderDaoToDomain(created), nil
}

func (r *OrderRepository) AddItem(ctx context.Context, orderID uint, item domain.OrderItem) (domain.OrderItem, error) {
	created, err := r.dao.InsertItem(ctx, dao.OrderItem{
		OrderID:   orderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	})
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	item.ID = created.ID
	item.TotalPrice = created.TotalPrice

	return item, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.OrderSummary, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	orders := make([]domain.OrderSummary, len(rows))
	for i, row := range rows {
		orders[i] = domain.OrderSummary{
			ID:            row.ID,
			CustomerName:  row.CustomerName,
			TotalAmount:   row.TotalAmount,
			Discount:      row.Discount,
			FinalAmount:   row.FinalAmount,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			CreatedAt:     row.CreatedAt,
		}
	}

	return orders, nil
}

func (r *OrderRepository) GetDetails(ctx context.Context, id uint) (domain.OrderDetails, []domain.OrderItem, error) {
	row, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.OrderDetails{}, nil, err
	}

	itemRows, err := r.dao.FindItems(ctx, id)
	if err != nil {
		return domain.OrderDetails{}, nil, fmt.Errorf("r.dao.FindItems -> %w", err)
	}

	details := domain.OrderDetails{
		Order: domain.Order{
			ID:            row.ID,
			CustomerID:    row.CustomerID,
			TotalAmount:   row.TotalAmount,
			Discount:      row.Discount,
			FinalAmount:   row.FinalAmount,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Notes:         row.Notes,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		},
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		CustomerEmail:   row.CustomerEmail,
		CustomerAddress: row.CustomerAddress,
	}

	items := make([]domain.OrderItem, len(itemRows))
	for i, itemRow := range itemRows {
		items[i] = domain.OrderItem{
			ID:          itemRow.ID,
			ProductID:   itemRow.ProductID,
			ProductName: itemRow.ProductName,
			Quantity:    itemRow.Quantity,
			UnitPrice:   itemRow.UnitPrice,
			TotalPrice:  itemRow.TotalPrice,
		}
	}

	return details, items, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := r.dao.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *OrderRepository) SalesSummary(ctx context.Context, startDate, endDate string) (domain.SalesSummary, error) {
	row, err := r.dao.SalesSummary(ctx, startDate, endDate)
	if err != nil {
		return domain.SalesSummary{}, fmt.Errorf("r.dao.SalesSummary -> %w", err)
	}

	return domain.SalesSummary{
		TotalOrders: row.TotalOrders,
		TotalSales:  row.TotalSales,
	}, nil
}

func (r *OrderRepository) TopSelling(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	rows, err := r.dao.TopSelling(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopSelling -> %w", err)
	}

	products := make([]domain.TopProduct, len(rows))
	for i, row := range rows {
		products[i] = domain.TopProduct{
			Name:         row.Name,
			TotalSold:    row.TotalSold,
			TotalRevenue: row.TotalRevenue,
		}
	}

	return products, nil
}
