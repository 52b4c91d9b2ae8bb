package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giftstore-backend/internal/api/handler/v1/request"
	"giftstore-backend/internal/api/handler/v1/response"
	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/service"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, input service.PlaceOrderInput) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.OrderSummary, error)
	GetOrderDetails(ctx context.Context, id uint) (domain.OrderDetails, []domain.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) error
}

type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{
		svc: svc,
	}
}

// HandleListOrders godoc
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.OrderList
// @Failure      500  {object}  response.Err
// @Router       /orders [get]
func (h *OrderHandler) HandleListOrders(ctx *gin.Context) {
	orders, err := h.svc.ListOrders(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListOrders -> h.svc.ListOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OrderList{Success: true, Orders: orders})
}

// HandleCreateOrder godoc
// @Summary      Place a new order
// @Description  Creates the order with its line items, decrements product stock and logs an inventory movement per item. If no customer_id is given but a customer_name is, a customer record is created first.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateOrderRequest  true  "order payload"
// @Success      200    {object}  response.OrderCreated
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /orders [post]
func (h *OrderHandler) HandleCreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	items := make([]service.PlaceOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.PlaceOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	order, err := h.svc.PlaceOrder(ctx.Request.Context(), service.PlaceOrderInput{
		CustomerID: req.CustomerID,
		Customer: domain.Customer{
			Name:    req.CustomerName,
			Phone:   req.CustomerPhone,
			Email:   req.CustomerEmail,
			Address: req.CustomerAddress,
		},
		TotalAmount:   req.TotalAmount,
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Items:         items,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateOrder -> h.svc.PlaceOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OrderCreated{Success: true, OrderID: order.ID})
}

// HandleGetOrder godoc
// @Summary      Get order details
// @Description  Returns the order with customer contact fields and all line items.
// @Tags         orders
// @Produce      json
// @Param        orderID  path      int  true  "order ID"
// @Success      200      {object}  response.OrderDetails
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/{orderID} [get]
func (h *OrderHandler) HandleGetOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("orderID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid order ID: %w", err)))
		return
	}

	order, items, err := h.svc.GetOrderDetails(ctx.Request.Context(), uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Order not found"))
			return
		}

		err = fmt.Errorf("HandleGetOrder -> h.svc.GetOrderDetails -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OrderDetails{Success: true, Order: order, Items: items})
}

// HandleUpdateOrderStatus godoc
// @Summary      Update order status
// @Description  Unconditional overwrite; any status string is accepted.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderID  path      int                               true  "order ID"
// @Param        input    body      request.UpdateOrderStatusRequest  true  "new status"
// @Success      200      {object}  response.OK
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/{orderID}/status [put]
func (h *OrderHandler) HandleUpdateOrderStatus(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("orderID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid order ID: %w", err)))
		return
	}

	var req request.UpdateOrderStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.UpdateOrderStatus(ctx.Request.Context(), uint(orderID), req.Status); err != nil {
		err = fmt.Errorf("HandleUpdateOrderStatus -> h.svc.UpdateOrderStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Success: true})
}
