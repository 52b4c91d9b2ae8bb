package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giftstore-backend/internal/api/handler/v1/response"
	"giftstore-backend/internal/domain"
)

type ReportService interface {
	LowStockProducts(ctx context.Context) ([]domain.LowStockProduct, error)
	SalesSummary(ctx context.Context, startDate, endDate string) (domain.SalesSummary, error)
	TopSellingProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleLowStockReport godoc
// @Summary      Products at or below their minimum stock
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.LowStockReport
// @Failure      500  {object}  response.Err
// @Router       /reports/low-stock [get]
func (h *ReportHandler) HandleLowStockReport(ctx *gin.Context) {
	products, err := h.svc.LowStockProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleLowStockReport -> h.svc.LowStockProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LowStockReport{Success: true, Products: products})
}

// HandleSalesSummary godoc
// @Summary      Order count and sales total
// @Description  Filters on calendar dates, inclusive, when both bounds are given.
// @Tags         reports
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        end_date    query     string  false  "YYYY-MM-DD"
// @Success      200         {object}  response.SalesSummaryReport
// @Failure      500         {object}  response.Err
// @Router       /reports/sales-summary [get]
func (h *ReportHandler) HandleSalesSummary(ctx *gin.Context) {
	startDate := ctx.Query("start_date")
	endDate := ctx.Query("end_date")

	summary, err := h.svc.SalesSummary(ctx.Request.Context(), startDate, endDate)
	if err != nil {
		err = fmt.Errorf("HandleSalesSummary -> h.svc.SalesSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SalesSummaryReport{
		Success:     true,
		TotalOrders: summary.TotalOrders,
		TotalSales:  summary.TotalSales,
	})
}

// HandleTopProducts godoc
// @Summary      Best-selling products by quantity
// @Tags         reports
// @Produce      json
// @Param        limit  query     int  false  "row limit"  default(10)
// @Success      200    {object}  response.TopProductsReport
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /reports/top-products [get]
func (h *ReportHandler) HandleTopProducts(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %w", err)))
			return
		}
		limit = parsed
	}

	products, err := h.svc.TopSellingProducts(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("HandleTopProducts -> h.svc.TopSellingProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.TopProductsReport{Success: true, Products: products})
}
