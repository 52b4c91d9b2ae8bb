package service

import (
	"context"
	"fmt"

	"giftstore-backend/internal/domain"
)

const defaultTopProductsLimit = 10

type ReportService struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
}

func NewReportService(orderRepo OrderRepository, productRepo ProductRepository) *ReportService {
	return &ReportService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *ReportService) LowStockProducts(ctx context.Context) ([]domain.LowStockProduct, error) {
	products, err := s.productRepo.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.productRepo.FindLowStock -> %w", err)
	}

	return products, nil
}

// SalesSummary filters by calendar date, inclusively, when both bounds
// are supplied; a lone bound is ignored.
func (s *ReportService) SalesSummary(ctx context.Context, startDate, endDate string) (domain.SalesSummary, error) {
	summary, err := s.orderRepo.SalesSummary(ctx, startDate, endDate)
	if err != nil {
		return domain.SalesSummary{}, fmt.Errorf("s.orderRepo.SalesSummary -> %w", err)
	}

	return summary, nil
}

func (s *ReportService) TopSellingProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}

	products, err := s.orderRepo.TopSelling(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.orderRepo.TopSelling -> %w", err)
	}

	return products, nil
}
