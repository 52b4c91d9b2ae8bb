package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftstore-backend/internal/api/handler/v1/request"
	"giftstore-backend/internal/api/handler/v1/response"
	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/service"
)

type CategoryHandler struct {
	svc CatalogService
}

func NewCategoryHandler(svc CatalogService) *CategoryHandler {
	return &CategoryHandler{
		svc: svc,
	}
}

// HandleListCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.CategoryList
// @Failure      500  {object}  response.Err
// @Router       /categories [get]
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CategoryList{Success: true, Categories: categories})
}

// HandleAddCategory godoc
// @Summary      Add a new category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        input  body      request.CategoryRequest  true  "category fields"
// @Success      200    {object}  response.CategoryCreated
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /categories [post]
func (h *CategoryHandler) HandleAddCategory(ctx *gin.Context) {
	var req request.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.AddCategory(ctx.Request.Context(), domain.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		// Name uniqueness is enforced at the store level.
		if errors.Is(err, service.ErrCategoryNameExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleAddCategory -> h.svc.AddCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CategoryCreated{Success: true, CategoryID: created.ID})
}
