package services

import (
	"testing"

	"hugolate/internal/models"
)

func badgeTypes(t *testing.T, svc *BadgeService, userID uint) map[models.BadgeType]bool {
	t.Helper()

	var badges []models.Badge
	if err := svc.db.Where("user_id = ?", userID).Find(&badges).Error; err != nil {
		t.Fatalf("failed to load badges: %v", err)
	}
	owned := make(map[models.BadgeType]bool, len(badges))
	for _, b := range badges {
		owned[b.Type] = true
	}
	return owned
}

func TestBadgesFirstBetAndSniper(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	course := createTestCourse(t, db, 510)
	createTestBet(t, db, user.ID, course.ID, 522, 100, nil)

	// Course still OPEN: no badge yet
	if err := svc.CheckAndAwardBadges(user.ID); err != nil {
		t.Fatalf("CheckAndAwardBadges failed: %v", err)
	}
	if owned := badgeTypes(t, svc, user.ID); len(owned) != 0 {
		t.Errorf("badges awarded before any resolution: %v", owned)
	}

	// Finish the course with an exact match
	actual := 522
	db.Model(&models.Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
		"status":         models.CourseStatusFinished,
		"actual_minutes": actual,
	})

	if err := svc.CheckAndAwardBadges(user.ID); err != nil {
		t.Fatalf("CheckAndAwardBadges failed: %v", err)
	}
	owned := badgeTypes(t, svc, user.ID)
	if !owned[models.BadgeFirstBet] {
		t.Error("FIRST_BET not awarded after resolved bet")
	}
	if !owned[models.BadgeSniper] {
		t.Error("SNIPER not awarded after an exact guess")
	}
}

func TestBadgeBigWinner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	course := createTestCourse(t, db, 510)
	bet := createTestBet(t, db, user.ID, course.ID, 523, 5000, nil)
	db.Model(&models.Bet{}).Where("id = ?", bet.ID).Update("points_earned", int64(6000))

	if err := svc.CheckAndAwardBadges(user.ID); err != nil {
		t.Fatalf("CheckAndAwardBadges failed: %v", err)
	}
	if owned := badgeTypes(t, svc, user.ID); !owned[models.BadgeBigWinner] {
		t.Error("BIG_WINNER not awarded for a 5000 stake with profit")
	}
}

func TestBadgeVeteran(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	for i := 0; i < 50; i++ {
		course := createTestCourse(t, db, 510+i)
		createTestBet(t, db, user.ID, course.ID, 522, 10, nil)
	}

	if err := svc.CheckAndAwardBadges(user.ID); err != nil {
		t.Fatalf("CheckAndAwardBadges failed: %v", err)
	}
	if owned := badgeTypes(t, svc, user.ID); !owned[models.BadgeVeteran] {
		t.Error("VETERAN not awarded at 50 bets")
	}
}

func TestBadgesBalanceAndStreak(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db)

	user := createTestUser(t, db, "alice", 1_000_000, 10, 10)

	if err := svc.CheckAndAwardBadges(user.ID); err != nil {
		t.Fatalf("CheckAndAwardBadges failed: %v", err)
	}
	owned := badgeTypes(t, svc, user.ID)
	if !owned[models.BadgeMillionaire] {
		t.Error("MILLIONAIRE not awarded at 1,000,000 balance")
	}
	if !owned[models.BadgeHotStreak] {
		t.Error("HOT_STREAK not awarded at streak 10")
	}
}

func TestBadgeEvaluationIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db)

	user := createTestUser(t, db, "alice", 2_000_000, 0, 0)

	for i := 0; i < 3; i++ {
		if err := svc.CheckAndAwardBadges(user.ID); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}

	var count int64
	db.Model(&models.Badge{}).
		Where("user_id = ? AND type = ?", user.ID, models.BadgeMillionaire).
		Count(&count)
	if count != 1 {
		t.Errorf("MILLIONAIRE awarded %d times, want exactly 1", count)
	}
}
