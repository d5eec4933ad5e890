package dto

type CreateProductOptionRequest struct {
	Name        string `json:"name" binding:"required" example:"Red"`
	Description string `json:"description" example:"Bright red casing"`
}

type UpdateProductOptionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
