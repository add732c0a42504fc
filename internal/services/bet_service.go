package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hugolate/internal/models"
	"hugolate/internal/scoring"
)

// BetService handles bet placement and history
type BetService struct {
	db           *gorm.DB
	minBetAmount int64
	maxBetAmount int64
}

// NewBetService creates a new BetService
func NewBetService(db *gorm.DB, minBetAmount, maxBetAmount int64) *BetService {
	return &BetService{db: db, minBetAmount: minBetAmount, maxBetAmount: maxBetAmount}
}

// PlaceBet stakes an amount on a course. The balance check, the optional
// item consumption, the wallet debit and the bet insert run in one
// transaction so a double submit can neither overdraw the wallet nor
// place two bets. Returns the new wallet balance.
func (s *BetService) PlaceBet(userID uint, req *models.PlaceBetRequest) (int64, error) {
	guessed, err := scoring.ParseClock(req.Time)
	if err != nil {
		return 0, ErrInvalidTime
	}

	if req.Amount < s.minBetAmount || req.Amount > s.maxBetAmount {
		return 0, ErrInvalidStake
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return 0, ErrCourseNotFound
	}

	var appliedItem *models.ItemType
	if req.AppliedItem != "" {
		item := models.ItemType(req.AppliedItem)
		if !models.IsValidItemType(item) {
			return 0, ErrUnknownItem
		}
		appliedItem = &item
	}

	var newBalance int64

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrCourseNotFound
			}
			return err
		}
		if course.Status != models.CourseStatusOpen {
			return ErrCourseFinished
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUserNotFound
			}
			return err
		}

		// One bet per (user, course); re-checked here in addition to the
		// unique index so a duplicate fails before any mutation.
		var existing int64
		if err := tx.Model(&models.Bet{}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateBet
		}

		if user.WalletBalance < req.Amount {
			return ErrInsufficientBalance
		}

		if appliedItem != nil {
			// Decrement guarded by quantity > 0 so inventory never goes
			// negative even under concurrent application.
			result := tx.Model(&models.UserItem{}).
				Where("user_id = ? AND item_type = ? AND quantity > 0", userID, *appliedItem).
				Update("quantity", gorm.Expr("quantity - 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrItemNotOwned
			}
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("wallet_balance", gorm.Expr("wallet_balance - ?", req.Amount)).Error; err != nil {
			return err
		}

		bet := models.Bet{
			ID:             uuid.New(),
			UserID:         userID,
			CourseID:       courseID,
			GuessedMinutes: guessed,
			Amount:         req.Amount,
			AppliedItem:    appliedItem,
		}
		if err := tx.Create(&bet).Error; err != nil {
			return fmt.Errorf("failed to create bet: %w", err)
		}

		newBalance = user.WalletBalance - req.Amount
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Bet placed: user=%d course=%s amount=%d guess=%s", userID, courseID, req.Amount, req.Time)
	return newBalance, nil
}

// GetUserBets returns the user's bet history, newest first
func (s *BetService) GetUserBets(userID uint) ([]models.BetResponse, error) {
	var bets []models.Bet
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at DESC").
		Find(&bets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bets: %w", err)
	}

	responses := make([]models.BetResponse, 0, len(bets))
	for _, bet := range bets {
		resp := models.BetResponse{
			ID:           bet.ID.String(),
			CourseID:     bet.CourseID.String(),
			GuessedTime:  scoring.FormatClock(bet.GuessedMinutes),
			Amount:       bet.Amount,
			AppliedItem:  bet.AppliedItem,
			PointsEarned: bet.PointsEarned,
			CreatedAt:    bet.CreatedAt,
		}
		if bet.Course != nil {
			resp.Subject = bet.Course.Subject
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetRecentActivity returns the latest bets across all users for the feed
func (s *BetService) GetRecentActivity(limit int) ([]models.ActivityEntry, error) {
	var bets []models.Bet
	err := s.db.
		Preload("User").
		Preload("Course").
		Order("created_at DESC").
		Limit(limit).
		Find(&bets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	entries := make([]models.ActivityEntry, 0, len(bets))
	for _, bet := range bets {
		entry := models.ActivityEntry{
			ID:     bet.ID.String(),
			Amount: bet.Amount,
			Type:   "BET",
			Time:   bet.CreatedAt,
		}
		if bet.User != nil {
			entry.User = bet.User.Name
		}
		if bet.Course != nil {
			entry.Subject = bet.Course.Subject
		}
		if bet.PointsEarned != nil && *bet.PointsEarned > 0 {
			entry.Type = "WIN"
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
