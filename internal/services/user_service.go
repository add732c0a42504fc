package services

import (
	"fmt"

	"gorm.io/gorm"

	"hugolate/internal/models"
)

// UserService handles user-related business logic
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile retrieves a user with badges and inventory preloaded
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("Badges").
		Preload("Items", "quantity > 0").
		First(&user, userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &user, nil
}

// GetLeaderboard returns users ordered by wallet balance with their
// display ranks attached
func (s *UserService) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	var users []models.User
	err := s.db.
		Order("wallet_balance DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, models.LeaderboardEntry{
			ID:            u.ID,
			Name:          u.Name,
			WalletBalance: u.WalletBalance,
			CurrentStreak: u.CurrentStreak,
			BestStreak:    u.BestStreak,
			Rank:          models.RankFor(u.WalletBalance).Label,
		})
	}
	return entries, nil
}
