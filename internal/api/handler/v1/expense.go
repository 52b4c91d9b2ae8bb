package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giftstore-backend/internal/api/handler/v1/request"
	"giftstore-backend/internal/api/handler/v1/response"
	"giftstore-backend/internal/domain"
)

type ExpenseService interface {
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	AddExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	DeleteExpense(ctx context.Context, id uint) error
}

type ExpenseHandler struct {
	svc ExpenseService
}

func NewExpenseHandler(svc ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		svc: svc,
	}
}

// HandleListExpenses godoc
// @Summary      List all expenses
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  response.ExpenseList
// @Failure      500  {object}  response.Err
// @Router       /expenses [get]
func (h *ExpenseHandler) HandleListExpenses(ctx *gin.Context) {
	expenses, err := h.svc.ListExpenses(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListExpenses -> h.svc.ListExpenses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ExpenseList{Success: true, Expenses: expenses})
}

// HandleAddExpense godoc
// @Summary      Add a new expense
// @Description  The date defaults to the current day when omitted.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        input  body      request.ExpenseRequest  true  "expense fields"
// @Success      200    {object}  response.ExpenseCreated
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /expenses [post]
func (h *ExpenseHandler) HandleAddExpense(ctx *gin.Context) {
	var req request.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.AddExpense(ctx.Request.Context(), domain.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		err = fmt.Errorf("HandleAddExpense -> h.svc.AddExpense -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ExpenseCreated{Success: true, ExpenseID: created.ID})
}

// HandleDeleteExpense godoc
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Param        expenseID  path      int  true  "expense ID"
// @Success      200        {object}  response.OK
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /expenses/{expenseID} [delete]
func (h *ExpenseHandler) HandleDeleteExpense(ctx *gin.Context) {
	expenseID, err := strconv.ParseUint(ctx.Param("expenseID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid expense ID: %w", err)))
		return
	}

	if err = h.svc.DeleteExpense(ctx.Request.Context(), uint(expenseID)); err != nil {
		err = fmt.Errorf("HandleDeleteExpense -> h.svc.DeleteExpense -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Success: true})
}
