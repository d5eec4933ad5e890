package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/products-api/internal/adapters/http/handlers"
	"github.com/rafaelleal24/products-api/internal/core/domain"
	"github.com/rafaelleal24/products-api/internal/core/dto"
	"github.com/rafaelleal24/products-api/internal/core/service"
)

type ProductOptionController struct {
	optionService *service.ProductOptionService
}

type ProductOptionResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewProductOptionResponse(option *domain.ProductOption) ProductOptionResponse {
	return ProductOptionResponse{
		ID:          string(option.ID),
		ProductID:   string(option.ProductID),
		Name:        option.Name,
		Description: option.Description,
		CreatedAt:   option.CreatedAt,
		UpdatedAt:   option.UpdatedAt,
	}
}

func NewProductOptionController(optionService *service.ProductOptionService) *ProductOptionController {
	return &ProductOptionController{optionService: optionService}
}

func optionPath(c *gin.Context) (domain.ID, domain.ID) {
	return domain.ID(c.Param("id")), domain.ID(c.Param("optionId"))
}

// ListOptions godoc
// @Summary     List product options
// @Tags        product options
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ListResponse[ProductOptionResponse]
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/options [get]
func (oc *ProductOptionController) ListOptions(c *gin.Context) {
	options, err := oc.optionService.ListOptions(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]ProductOptionResponse, len(options))
	for i, option := range options {
		items[i] = NewProductOptionResponse(option)
	}

	c.JSON(http.StatusOK, ListResponse[ProductOptionResponse]{Items: items})
}

// GetOption godoc
// @Summary     Get a product option
// @Tags        product options
// @Produce     json
// @Param       id       path     string true "Product ID"
// @Param       optionId path     string true "Option ID"
// @Success     200      {object} ProductOptionResponse
// @Failure     404      {object} handlers.ErrorResponse
// @Failure     500      {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/options/{optionId} [get]
func (oc *ProductOptionController) GetOption(c *gin.Context) {
	productID, optionID := optionPath(c)
	option, err := oc.optionService.GetOption(c.Request.Context(), productID, optionID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductOptionResponse(option))
}

// CreateOption godoc
// @Summary     Create a product option
// @Tags        product options
// @Accept      json
// @Produce     json
// @Param       id              path     string                         true  "Product ID"
// @Param       Idempotency-Key header   string                         false "Idempotency key"
// @Param       request         body     dto.CreateProductOptionRequest true  "Option data"
// @Success     201             {object} ProductOptionResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/options [post]
func (oc *ProductOptionController) CreateOption(c *gin.Context) {
	var request dto.CreateProductOptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, handlers.NewBindingError(err))
		return
	}
	option, err := oc.optionService.CreateOption(c.Request.Context(), domain.ID(c.Param("id")), c.GetHeader(idempotencyKeyHeader), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductOptionResponse(option))
}

// UpdateOption godoc
// @Summary     Update a product option
// @Tags        product options
// @Accept      json
// @Produce     json
// @Param       id       path     string                         true "Product ID"
// @Param       optionId path     string                         true "Option ID"
// @Param       request  body     dto.UpdateProductOptionRequest true "Fields to update"
// @Success     200      {object} ProductOptionResponse
// @Failure     400      {object} handlers.ErrorResponse
// @Failure     404      {object} handlers.ErrorResponse
// @Failure     429      {object} handlers.ErrorResponse
// @Failure     500      {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/options/{optionId} [put]
func (oc *ProductOptionController) UpdateOption(c *gin.Context) {
	var request dto.UpdateProductOptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, handlers.NewBindingError(err))
		return
	}
	productID, optionID := optionPath(c)
	option, err := oc.optionService.UpdateOption(c.Request.Context(), productID, optionID, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductOptionResponse(option))
}

// DeleteOption godoc
// @Summary     Delete a product option
// @Tags        product options
// @Param       id       path string true "Product ID"
// @Param       optionId path string true "Option ID"
// @Success     204
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/options/{optionId} [delete]
func (oc *ProductOptionController) DeleteOption(c *gin.Context) {
	productID, optionID := optionPath(c)
	if err := oc.optionService.DeleteOption(c.Request.Context(), productID, optionID); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
