package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hugolate/internal/auth"
	"hugolate/internal/models"
	"hugolate/internal/services"
)

// ShopHandler handles shop endpoints
type ShopHandler struct {
	shopService *services.ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService *services.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// ListItems returns the item catalog.
// GET /api/shop/items
func (h *ShopHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.shopService.ListItems()})
}

// BuyItem purchases one consumable.
// POST /api/shop/buy
func (h *ShopHandler) BuyItem(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		ItemType string `json:"item_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newBalance, err := h.shopService.BuyItem(userID, models.ItemType(req.ItemType))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"new_balance": newBalance,
	})
}
