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

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id uint) (domain.Customer, error)
	AddCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error)
}

type CustomerHandler struct {
	svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{
		svc: svc,
	}
}

// HandleListCustomers godoc
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Success      200  {object}  response.CustomerList
// @Failure      500  {object}  response.Err
// @Router       /customers [get]
func (h *CustomerHandler) HandleListCustomers(ctx *gin.Context) {
	customers, err := h.svc.ListCustomers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListCustomers -> h.svc.ListCustomers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CustomerList{Success: true, Customers: customers})
}

// HandleAddCustomer godoc
// @Summary      Add a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        input  body      request.CustomerRequest  true  "customer fields"
// @Success      200    {object}  response.CustomerCreated
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /customers [post]
func (h *CustomerHandler) HandleAddCustomer(ctx *gin.Context) {
	var req request.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.AddCustomer(ctx.Request.Context(), domain.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		err = fmt.Errorf("HandleAddCustomer -> h.svc.AddCustomer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CustomerCreated{Success: true, CustomerID: created.ID})
}

// HandleGetCustomer godoc
// @Summary      Get a customer by ID
// @Tags         customers
// @Produce      json
// @Param        customerID  path      int  true  "customer ID"
// @Success      200         {object}  response.CustomerDetails
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /customers/{customerID} [get]
func (h *CustomerHandler) HandleGetCustomer(ctx *gin.Context) {
	customerID, err := strconv.ParseUint(ctx.Param("customerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid customer ID: %w", err)))
		return
	}

	customer, err := h.svc.GetCustomer(ctx.Request.Context(), uint(customerID))
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Customer not found"))
			return
		}

		err = fmt.Errorf("HandleGetCustomer -> h.svc.GetCustomer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CustomerDetails{Success: true, Customer: customer})
}
