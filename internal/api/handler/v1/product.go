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

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	AddProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	AddCategory(ctx context.Context, category domain.Category) (domain.Category, error)
}

type ProductHandler struct {
	svc CatalogService
}

func NewProductHandler(svc CatalogService) *ProductHandler {
	return &ProductHandler{
		svc: svc,
	}
}

// HandleListProducts godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  response.ProductList
// @Failure      500  {object}  response.Err
// @Router       /products [get]
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	products, err := h.svc.ListProducts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListProducts -> h.svc.ListProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ProductList{Success: true, Products: products})
}

// HandleAddProduct godoc
// @Summary      Add a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        input  body      request.ProductRequest  true  "product fields"
// @Success      200    {object}  response.ProductCreated
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /products [post]
func (h *ProductHandler) HandleAddProduct(ctx *gin.Context) {
	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.AddProduct(ctx.Request.Context(), domain.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.ResolvedMinStock(),
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("HandleAddProduct -> h.svc.AddProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ProductCreated{Success: true, ProductID: created.ID})
}

// HandleUpdateProduct godoc
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        productID  path      int                     true  "product ID"
// @Param        input      body      request.ProductRequest  true  "product fields"
// @Success      200        {object}  response.OK
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [put]
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid product ID: %w", err)))
		return
	}

	var req request.ProductRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err = h.svc.UpdateProduct(ctx.Request.Context(), domain.Product{
		ID:          uint(productID),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.ResolvedMinStock(),
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("HandleUpdateProduct -> h.svc.UpdateProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Success: true})
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        productID  path      int  true  "product ID"
// @Success      200        {object}  response.OK
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [delete]
func (h *ProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid product ID: %w", err)))
		return
	}

	if err = h.svc.DeleteProduct(ctx.Request.Context(), uint(productID)); err != nil {
		err = fmt.Errorf("HandleDeleteProduct -> h.svc.DeleteProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{Success: true})
}

// HandleGetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        productID  path      int  true  "product ID"
// @Success      200        {object}  response.ProductDetails
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /products/{productID} [get]
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid product ID: %w", err)))
		return
	}

	product, err := h.svc.GetProduct(ctx.Request.Context(), uint(productID))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Product not found"))
			return
		}

		err = fmt.Errorf("HandleGetProduct -> h.svc.GetProduct -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ProductDetails{Success: true, Product: product})
}
