package service

import (
	"context"
	"errors"
	"fmt"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository"
)

var ErrOrderNotFound = repository.ErrOrderNotFound

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	AddItem(ctx context.Context, orderID uint, item domain.OrderItem) (domain.OrderItem, error)
	FindAll(ctx context.Context) ([]domain.OrderSummary, error)
	GetDetails(ctx context.Context, id uint) (domain.OrderDetails, []domain.OrderItem, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	SalesSummary(ctx context.Context, startDate, endDate string) (domain.SalesSummary, error)
	TopSelling(ctx context.Context, limit int) ([]domain.TopProduct, error)
}

type InventoryMovementRepository interface {
	Create(ctx context.Context, movement domain.InventoryMovement) (domain.InventoryMovement, error)
	FindByProduct(ctx context.Context, productID uint) ([]domain.InventoryMovement, error)
}

// PlaceOrderItem is one submitted line item.
type PlaceOrderItem struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

// PlaceOrderInput carries everything the order-placement workflow needs.
// Customer is only consulted when CustomerID is nil and Customer.Name is
// set, in which case a new customer record is created first.
type PlaceOrderInput struct {
	CustomerID    *uint
	Customer      domain.Customer
	TotalAmount   float64
	Discount      float64
	PaymentMethod string
	Notes         string
	Items         []PlaceOrderItem
}

type OrderService struct {
	repo          OrderRepository
	productRepo   ProductRepository
	customerRepo  CustomerRepository
	inventoryRepo InventoryMovementRepository
}

func NewOrderService(
	repo OrderRepository,
	productRepo ProductRepository,
	customerRepo CustomerRepository,
	inventoryRepo InventoryMovementRepository,
) *OrderService {
	return &OrderService{
		repo:          repo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
	}
}

// PlaceOrder runs the order-placement workflow as a straight sequence of
// independent statements, deliberately without a wrapping transaction:
// a failure partway through leaves the order and already-processed items
// committed. Stock is read, decremented in application code and written
// back with no floor at zero.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (domain.Order, error) {
	customerID := input.CustomerID
	if customerID == nil && input.Customer.Name != "" {
		customer, err := s.customerRepo.Create(ctx, input.Customer)
		if err != nil {
			return domain.Order{}, fmt.Errorf("s.customerRepo.Create -> %w", err)
		}
		customerID = &customer.ID
	}

	order, err := s.repo.Create(ctx, domain.Order{
		CustomerID:    customerID,
		TotalAmount:   input.TotalAmount,
		Discount:      input.Discount,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	for _, item := range input.Items {
		_, err = s.repo.AddItem(ctx, order.ID, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("s.repo.AddItem -> %w", err)
		}

		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			// An unknown product keeps its line item but triggers no
			// stock change or movement.
			if errors.Is(err, ErrProductNotFound) {
				continue
			}

			return domain.Order{}, fmt.Errorf("s.productRepo.GetByID -> %w", err)
		}

		newStock := product.Stock - item.Quantity
		if err = s.productRepo.SetStock(ctx, item.ProductID, newStock); err != nil {
			return domain.Order{}, fmt.Errorf("s.productRepo.SetStock -> %w", err)
		}

		orderID := order.ID
		_, err = s.inventoryRepo.Create(ctx, domain.InventoryMovement{
			ProductID:    item.ProductID,
			MovementType: domain.MovementOut,
			Quantity:     item.Quantity,
			Reason:       fmt.Sprintf("Sale - Order #%d", order.ID),
			ReferenceID:  &orderID,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("s.inventoryRepo.Create -> %w", err)
		}
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return orders, nil
}

func (s *OrderService) GetOrderDetails(ctx context.Context, id uint) (domain.OrderDetails, []domain.OrderItem, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return nil
}
