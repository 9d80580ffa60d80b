// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}

	utils.SuccessResponse(c, products)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /api/products?id=
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequestResponse(c, "Product ID is required", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /api/products?id=
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequestResponse(c, "Product ID is required", nil)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	utils.MessageOK(c, "Product deleted")
}
