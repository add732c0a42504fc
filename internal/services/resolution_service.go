package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hugolate/internal/models"
	"hugolate/internal/scoring"
)

// ResolutionService settles a course: it converts every bet into a payout,
// updates wallets and streaks, and flips the course to FINISHED, all as a
// single all-or-nothing transaction.
type ResolutionService struct {
	db           *gorm.DB
	badgeService *BadgeService
}

// NewResolutionService creates a new ResolutionService
func NewResolutionService(db *gorm.DB, badgeService *BadgeService) *ResolutionService {
	return &ResolutionService{db: db, badgeService: badgeService}
}

// betOutcome is the staged result for one bet before commit
type betOutcome struct {
	betID       uuid.UUID
	userID      uint
	finalPayout int64
	nextStreak  int
	nextBest    int
}

// ResolveCourse settles every bet on the course against the admin-entered
// actual arrival time. If any staged write fails, none apply: a partial
// payout across some users is the one state this subsystem must never
// produce. Badge evaluation runs after the commit and is best-effort.
func (s *ResolutionService) ResolveCourse(courseID uuid.UUID, actualTime string) error {
	actualMinutes, err := scoring.ParseClock(actualTime)
	if err != nil {
		return ErrInvalidTime
	}

	var affectedUsers []uint

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrCourseNotFound
			}
			return err
		}

		if course.Status == models.CourseStatusFinished {
			return ErrCourseFinished
		}

		var bets []models.Bet
		if err := tx.Where("course_id = ?", courseID).Find(&bets).Error; err != nil {
			return fmt.Errorf("failed to load bets: %w", err)
		}

		bettors, err := s.loadBettors(tx, bets)
		if err != nil {
			return err
		}

		// Bounty snapshot: the single top-balance user and their score on
		// this course, read inside this transaction so a concurrent
		// balance change cannot shift the target mid-computation. A
		// target with no bet scores 0, so any positive-scoring rival
		// outscores them.
		targetID, targetScore, err := s.bountySnapshot(tx, bets, actualMinutes)
		if err != nil {
			return err
		}

		outcomes := make([]betOutcome, 0, len(bets))
		for _, bet := range bets {
			bettor, ok := bettors[bet.UserID]
			if !ok {
				return fmt.Errorf("%w: bettor %d on bet %s", ErrUserNotFound, bet.UserID, bet.ID)
			}

			baseScore := scoring.CalculateHugoScore(actualMinutes, bet.GuessedMinutes)
			rawPayout := scoring.RawPayout(baseScore, bet.Amount, bettor.CurrentStreak)
			finalPayout := scoring.ApplyItemModifier(rawPayout, bet.Amount, bet.AppliedItem)

			if bet.UserID != targetID && baseScore > targetScore {
				finalPayout += scoring.BountyAmount
				log.Printf("[ResolveCourse] Bounty: user=%d outscored target=%d (%d > %d)",
					bet.UserID, targetID, baseScore, targetScore)
			}

			nextStreak := scoring.NextStreak(bettor.CurrentStreak, baseScore)
			nextBest := bettor.BestStreak
			if nextStreak > nextBest {
				nextBest = nextStreak
			}

			outcomes = append(outcomes, betOutcome{
				betID:       bet.ID,
				userID:      bet.UserID,
				finalPayout: finalPayout,
				nextStreak:  nextStreak,
				nextBest:    nextBest,
			})
		}

		for _, o := range outcomes {
			if err := tx.Model(&models.Bet{}).
				Where("id = ?", o.betID).
				Update("points_earned", o.finalPayout).Error; err != nil {
				return fmt.Errorf("failed to update bet %s: %w", o.betID, err)
			}

			if err := tx.Model(&models.User{}).
				Where("id = ?", o.userID).
				Updates(map[string]interface{}{
					"wallet_balance": gorm.Expr("wallet_balance + ?", o.finalPayout),
					"current_streak": o.nextStreak,
					"best_streak":    o.nextBest,
				}).Error; err != nil {
				return fmt.Errorf("failed to credit user %d: %w", o.userID, err)
			}
		}

		if err := tx.Model(&models.Course{}).
			Where("id = ?", courseID).
			Updates(map[string]interface{}{
				"status":         models.CourseStatusFinished,
				"actual_minutes": actualMinutes,
			}).Error; err != nil {
			return fmt.Errorf("failed to finish course: %w", err)
		}

		for _, o := range outcomes {
			affectedUsers = append(affectedUsers, o.userID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[ResolveCourse] Course %s resolved at %s with %d bets", courseID, actualTime, len(affectedUsers))

	// Badges are non-critical: a failure here never rolls back the
	// financial commit above.
	for _, userID := range affectedUsers {
		if err := s.badgeService.CheckAndAwardBadges(userID); err != nil {
			log.Printf("Warning: badge evaluation failed for user %d: %v", userID, err)
		}
	}

	return nil
}

// loadBettors fetches every distinct bettor of the batch in one query
func (s *ResolutionService) loadBettors(tx *gorm.DB, bets []models.Bet) (map[uint]models.User, error) {
	ids := make([]uint, 0, len(bets))
	seen := make(map[uint]bool, len(bets))
	for _, bet := range bets {
		if !seen[bet.UserID] {
			seen[bet.UserID] = true
			ids = append(ids, bet.UserID)
		}
	}

	bettors := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return bettors, nil
	}

	var users []models.User
	if err := tx.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load bettors: %w", err)
	}
	for _, u := range users {
		bettors[u.ID] = u
	}
	return bettors, nil
}

// bountySnapshot identifies the top-balance user as of this transaction
// and their base score on the course (0 when they did not bet)
func (s *ResolutionService) bountySnapshot(tx *gorm.DB, bets []models.Bet, actualMinutes int) (uint, int, error) {
	var target models.User
	err := tx.Order("wallet_balance DESC").First(&target).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to find bounty target: %w", err)
	}

	targetScore := 0
	for _, bet := range bets {
		if bet.UserID == target.ID {
			targetScore = scoring.CalculateHugoScore(actualMinutes, bet.GuessedMinutes)
			break
		}
	}
	return target.ID, targetScore, nil
}
