package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/products-api/internal/adapters/http/handlers"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/dto"
	"github.com/rafaelleal24/products-api/internal/core/service"
)

const idempotencyKeyHeader = "Idempotency-Key"

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         json.Number `json:"price" swaggertype:"number" example:"1.50"`
	DeliveryPrice json.Number `json:"deliveryPrice" swaggertype:"number" example:"0.50"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// ListResponse wraps collections so the payload can grow without breaking clients.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func amountJSON(amount domain.Amount) json.Number {
	return json.Number(amount.StringFixed(domain.PriceScale))
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            string(product.ID),
		Name:          product.Name,
		Description:   product.Description,
		Price:         amountJSON(product.Price),
		DeliveryPrice: amountJSON(product.DeliveryPrice),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ListProducts godoc
// @Summary     List products
// @Description Returns all products, or those whose name matches exactly (case-insensitive)
// @Tags        products
// @Produce     json
// @Param       name query    string false "Product name"
// @Success     200  {object} ListResponse[ProductResponse]
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.productService.ListProducts(c.Request.Context(), c.Query("name"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i, product := range products {
		items[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, ListResponse[ProductResponse]{Items: items})
}

// GetProduct godoc
// @Summary     Get product by ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetProduct(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new product, with optional idempotency support
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                   false "Idempotency key"
// @Param       request         body     dto.CreateProductRequest true  "Product data"
// @Success     201             {object} ProductResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, handlers.NewBindingError(err))
		return
	}
	product, err := pc.productService.CreateProduct(c.Request.Context(), c.GetHeader(idempotencyKeyHeader), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Applies the supplied fields to an existing product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Fields to update"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, handlers.NewBindingError(err))
		return
	}
	product, err := pc.productService.UpdateProduct(c.Request.Context(), domain.ID(c.Param("id")), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Deletes a product together with its options
// @Tags        products
// @Param       id  path string true "Product ID"
// @Success     204
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.productService.DeleteProduct(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
