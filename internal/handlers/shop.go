// internal/handlers/shop.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

type ShopHandler struct {
	shopService *services.ShopService
}

func NewShopHandler(shopService *services.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// GET /api/shops
func (h *ShopHandler) GetShops(c *gin.Context) {
	shops, err := h.shopService.ListShops(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch shops")
		return
	}

	utils.SuccessResponse(c, shops)
}

// POST /api/shops
func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req services.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create shop")
		return
	}

	utils.CreatedResponse(c, shop)
}

// PUT /api/shops?id=
func (h *ShopHandler) UpdateShop(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequestResponse(c, "Shop ID is required", nil)
		return
	}

	var req services.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update shop")
		return
	}

	utils.SuccessResponse(c, shop)
}

// DELETE /api/shops?id=
func (h *ShopHandler) DeleteShop(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequestResponse(c, "Shop ID is required", nil)
		return
	}

	if err := h.shopService.DeleteShop(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete shop")
		return
	}

	utils.MessageOK(c, "Shop deleted")
}
