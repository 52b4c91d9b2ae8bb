package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftstore-backend/internal/domain"
)

type orderRepoStub struct {
	lastLimit     int
	lastStartDate string
	lastEndDate   string
}

func (s *orderRepoStub) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	return order, nil
}

func (s *orderRepoStub) AddItem(_ context.Context, _ uint, item domain.OrderItem) (domain.OrderItem, error) {
	return item, nil
}

func (s *orderRepoStub) FindAll(_ context.Context) ([]domain.OrderSummary, error) {
	return nil, nil
}

func (s *orderRepoStub) GetDetails(_ context.Context, _ uint) (domain.OrderDetails, []domain.OrderItem, error) {
	return domain.OrderDetails{}, nil, nil
}

func (s *orderRepoStub) UpdateStatus(_ context.Context, _ uint, _ string) error {
	return nil
}

func (s *orderRepoStub) SalesSummary(_ context.Context, startDate, endDate string) (domain.SalesSummary, error) {
	s.lastStartDate = startDate
	s.lastEndDate = endDate
	return domain.SalesSummary{TotalOrders: 4, TotalSales: 620}, nil
}

func (s *orderRepoStub) TopSelling(_ context.Context, limit int) ([]domain.TopProduct, error) {
	s.lastLimit = limit
	return nil, nil
}

type productRepoStub struct{}

func (s *productRepoStub) FindAll(_ context.Context) ([]domain.Product, error) { return nil, nil }

func (s *productRepoStub) GetByID(_ context.Context, _ uint) (domain.Product, error) {
	return domain.Product{}, nil
}

func (s *productRepoStub) Create(_ context.Context, product domain.Product) (domain.Product, error) {
	return product, nil
}

func (s *productRepoStub) Update(_ context.Context, _ domain.Product) error { return nil }

func (s *productRepoStub) Delete(_ context.Context, _ uint) error { return nil }

func (s *productRepoStub) SetStock(_ context.Context, _ uint, _ int) error { return nil }

func (s *productRepoStub) FindLowStock(_ context.Context) ([]domain.LowStockProduct, error) {
	return []domain.LowStockProduct{
		{ID: 1, Name: "Sold Out", CurrentStock: 0, MinStock: 5},
	}, nil
}

func TestTopSellingProducts_defaultsLimit(t *testing.T) {
	orderRepo := &orderRepoStub{}
	svc := NewReportService(orderRepo, &productRepoStub{})

	_, err := svc.TopSellingProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, orderRepo.lastLimit)

	_, err = svc.TopSellingProducts(context.Background(), -2)
	require.NoError(t, err)
	assert.Equal(t, 10, orderRepo.lastLimit)
}

func TestTopSellingProducts_passesExplicitLimit(t *testing.T) {
	orderRepo := &orderRepoStub{}
	svc := NewReportService(orderRepo, &productRepoStub{})

	_, err := svc.TopSellingProducts(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, orderRepo.lastLimit)
}

func TestSalesSummary_passesBounds(t *testing.T) {
	orderRepo := &orderRepoStub{}
	svc := NewReportService(orderRepo, &productRepoStub{})

	summary, err := svc.SalesSummary(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", orderRepo.lastStartDate)
	assert.Equal(t, "2026-08-31", orderRepo.lastEndDate)
	assert.Equal(t, int64(4), summary.TotalOrders)
	assert.Equal(t, float64(620), summary.TotalSales)
}

func TestLowStockProducts(t *testing.T) {
	svc := NewReportService(&orderRepoStub{}, &productRepoStub{})

	products, err := svc.LowStockProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sold Out", products[0].Name)
}
