package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hugolate/internal/auth"
	"hugolate/internal/models"
	"hugolate/internal/services"
)

// BetHandler handles bet placement and history endpoints
type BetHandler struct {
	betService *services.BetService
}

// NewBetHandler creates a new BetHandler
func NewBetHandler(betService *services.BetService) *BetHandler {
	return &BetHandler{betService: betService}
}

// PlaceBet stakes an amount on the arrival time of a course.
// POST /api/bets
func (h *BetHandler) PlaceBet(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newBalance, err := h.betService.PlaceBet(userID, &req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"new_balance": newBalance,
	})
}

// GetUserBets returns the current user's bet history.
// GET /api/bets
func (h *BetHandler) GetUserBets(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bets, err := h.betService.GetUserBets(userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bets": bets})
}

// GetActivity returns the five most recent bets across all agents.
// GET /api/activity
func (h *BetHandler) GetActivity(c *gin.Context) {
	entries, err := h.betService.GetRecentActivity(5)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
