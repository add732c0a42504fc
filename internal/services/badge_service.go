package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"hugolate/internal/models"
)

// BadgeService awards permanent achievements. Evaluation is idempotent:
// the (user, type) unique index plus the already-owned filter make
// re-running it a no-op.
type BadgeService struct {
	db *gorm.DB
}

// NewBadgeService creates a new BadgeService
func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{db: db}
}

// CheckAndAwardBadges evaluates every unlock predicate for the user and
// persists the newly true ones in one batch
func (s *BadgeService) CheckAndAwardBadges(userID uint) error {
	var user models.User
	err := s.db.
		Preload("Badges").
		Preload("Bets").
		Preload("Bets.Course").
		First(&user, userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	owned := make(map[models.BadgeType]bool, len(user.Badges))
	for _, b := range user.Badges {
		owned[b.Type] = true
	}

	var newBadges []models.Badge
	award := func(t models.BadgeType) {
		if !owned[t] {
			newBadges = append(newBadges, models.Badge{UserID: userID, Type: t})
		}
	}

	if hasResolvedBet(user.Bets) {
		award(models.BadgeFirstBet)
	}
	if hasPerfectScore(user.Bets) {
		award(models.BadgeSniper)
	}
	if hasBigWin(user.Bets) {
		award(models.BadgeBigWinner)
	}
	if len(user.Bets) >= 50 {
		award(models.BadgeVeteran)
	}
	if user.WalletBalance >= 1_000_000 {
		award(models.BadgeMillionaire)
	}
	if user.CurrentStreak >= 10 {
		award(models.BadgeHotStreak)
	}

	if len(newBadges) == 0 {
		return nil
	}

	if err := s.db.Create(&newBadges).Error; err != nil {
		return fmt.Errorf("failed to award badges: %w", err)
	}

	for _, b := range newBadges {
		log.Printf("Badge awarded: user=%d badge=%s", userID, b.Type)
	}
	return nil
}

func hasResolvedBet(bets []models.Bet) bool {
	for _, bet := range bets {
		if bet.Course != nil && bet.Course.Status == models.CourseStatusFinished {
			return true
		}
	}
	return false
}

// hasPerfectScore recomputes the perfect-guess condition from the stored
// records: an exact guess on a finished course is a base score of 1000
func hasPerfectScore(bets []models.Bet) bool {
	for _, bet := range bets {
		if bet.Course != nil &&
			bet.Course.Status == models.CourseStatusFinished &&
			bet.Course.ActualMinutes != nil &&
			bet.GuessedMinutes == *bet.Course.ActualMinutes {
			return true
		}
	}
	return false
}

func hasBigWin(bets []models.Bet) bool {
	for _, bet := range bets {
		if bet.Amount >= 5000 && bet.PointsEarned != nil && *bet.PointsEarned > bet.Amount {
			return true
		}
	}
	return false
}
