package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hugolate/internal/auth"
	"hugolate/internal/models"
	"hugolate/internal/services"
)

// UserHandler handles user-related endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the current user's profile with rank, badges and
// inventory.
// GET /api/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"role":           user.Role,
			"wallet_balance": user.WalletBalance,
			"current_streak": user.CurrentStreak,
			"best_streak":    user.BestStreak,
			"rank":           models.RankFor(user.WalletBalance),
			"badges":         models.BadgeResponses(user.Badges),
			"items":          user.Items,
		},
	})
}

// GetLeaderboard returns users ranked by wallet balance.
// GET /api/leaderboard
func (h *UserHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.userService.GetLeaderboard(50)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
