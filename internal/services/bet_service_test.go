package services

import (
	"errors"
	"testing"

	"hugolate/internal/models"
)

func TestPlaceBet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBetService(db, 1, 10000)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	course := createTestCourse(t, db, 510)

	newBalance, err := svc.PlaceBet(user.ID, &models.PlaceBetRequest{
		CourseID: course.ID.String(),
		Time:     "08:42",
		Amount:   300,
	})
	if err != nil {
		t.Fatalf("PlaceBet failed: %v", err)
	}
	if newBalance != 700 {
		t.Errorf("new balance = %d, want 700", newBalance)
	}
	if got := reloadUser(t, db, user.ID).WalletBalance; got != 700 {
		t.Errorf("stored balance = %d, want 700", got)
	}

	var bet models.Bet
	if err := db.First(&bet, "user_id = ? AND course_id = ?", user.ID, course.ID).Error; err != nil {
		t.Fatalf("bet not stored: %v", err)
	}
	if bet.GuessedMinutes != 522 {
		t.Errorf("guessed minutes = %d, want 522", bet.GuessedMinutes)
	}
	if bet.PointsEarned != nil {
		t.Errorf("points earned set before resolution: %v", *bet.PointsEarned)
	}
}

func TestPlaceBetValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBetService(db, 1, 10000)

	user := createTestUser(t, db, "alice", 50000, 0, 0)
	course := createTestCourse(t, db, 510)

	cases := []struct {
		name string
		req  models.PlaceBetRequest
		want error
	}{
		{"bad time", models.PlaceBetRequest{CourseID: course.ID.String(), Time: "8h42", Amount: 100}, ErrInvalidTime},
		{"stake above bound", models.PlaceBetRequest{CourseID: course.ID.String(), Time: "08:42", Amount: 10001}, ErrInvalidStake},
		{"stake below bound", models.PlaceBetRequest{CourseID: course.ID.String(), Time: "08:42", Amount: 0}, ErrInvalidStake},
		{"unknown item", models.PlaceBetRequest{CourseID: course.ID.String(), Time: "08:42", Amount: 100, AppliedItem: "CROWBAR"}, ErrUnknownItem},
	}
	for _, c := range cases {
		if _, err := svc.PlaceBet(user.ID, &c.req); !errors.Is(err, c.want) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}

	// Rejected before any store mutation
	if got := reloadUser(t, db, user.ID).WalletBalance; got != 50000 {
		t.Errorf("balance mutated by rejected bets: %d", got)
	}
}

func TestPlaceBetDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBetService(db, 1, 10000)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	course := createTestCourse(t, db, 510)

	req := models.PlaceBetRequest{CourseID: course.ID.String(), Time: "08:42", Amount: 100}
	if _, err := svc.PlaceBet(user.ID, &req); err != nil {
		t.Fatalf("first bet failed: %v", err)
	}

	_, err := svc.PlaceBet(user.ID, &req)
	if !errors.Is(err, ErrDuplicateBet) {
		t.Fatalf("duplicate bet err = %v, want ErrDuplicateBet", err)
	}

	// The duplicate must not have debited the wallet a second time
	if got := reloadUser(t, db, user.ID).WalletBalance; got != 900 {
		t.Errorf("balance = %d after rejected duplicate, want 900", got)
	}
}

func TestPlaceBetInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBetService(db, 1, 10000)

	user := createTestUser(t, db, "alice", 50, 0, 0)
	course := createTestCourse(t, db, 510)

	_, err := svc.PlaceBet(user.ID, &models.PlaceBetRequest{
		CourseID: course.ID.String(),
		Time:     "08:42",
		Amount:   100,
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	if got := reloadUser(t, db, user.ID).WalletBalance; got != 50 {
		t.Errorf("balance = %d, want 50", got)
	}
}

func TestPlaceBetOnFinishedCourse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBetService(db, 1, 10000)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	course := createTestCourse(t, db, 510)
	db.Model(&models.Course{}).Where("id = ?", course.ID).Update("status", models.CourseStatusFinished)

	_, err := svc.PlaceBet(user.ID, &models.PlaceBetRequest{
		CourseID: course.ID.String(),
		Time:     "08:42",
		Amount:   100,
	})
	if !errors.Is(err, ErrCourseFinished) {
		t.Fatalf("err = %v, want ErrCourseFinished", err)
	}
}

func TestPlaceBetConsumesItem(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBetService(db, 1, 10000)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	courseA := createTestCourse(t, db, 510)
	courseB := createTestCourse(t, db, 600)

	item := models.UserItem{UserID: user.ID, ItemType: models.ItemWarrant, Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed inventory: %v", err)
	}

	_, err := svc.PlaceBet(user.ID, &models.PlaceBetRequest{
		CourseID:    courseA.ID.String(),
		Time:        "08:42",
		Amount:      100,
		AppliedItem: "WARRANT",
	})
	if err != nil {
		t.Fatalf("PlaceBet with item failed: %v", err)
	}

	var inventory models.UserItem
	db.First(&inventory, "user_id = ? AND item_type = ?", user.ID, models.ItemWarrant)
	if inventory.Quantity != 0 {
		t.Errorf("quantity = %d after application, want 0", inventory.Quantity)
	}

	// Quantity 0: the next application is rejected and nothing is debited
	balanceBefore := reloadUser(t, db, user.ID).WalletBalance
	_, err = svc.PlaceBet(user.ID, &models.PlaceBetRequest{
		CourseID:    courseB.ID.String(),
		Time:        "10:00",
		Amount:      100,
		AppliedItem: "WARRANT",
	})
	if !errors.Is(err, ErrItemNotOwned) {
		t.Fatalf("err = %v, want ErrItemNotOwned", err)
	}
	if got := reloadUser(t, db, user.ID).WalletBalance; got != balanceBefore {
		t.Errorf("balance = %d after rejected application, want %d", got, balanceBefore)
	}
}

func TestGetRecentActivity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBetService(db, 1, 10000)

	user := createTestUser(t, db, "alice", 1000, 0, 0)
	course := createTestCourse(t, db, 510)
	bet := createTestBet(t, db, user.ID, course.ID, 522, 100, nil)

	entries, err := svc.GetRecentActivity(5)
	if err != nil {
		t.Fatalf("GetRecentActivity failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Type != "BET" {
		t.Errorf("type = %s before resolution, want BET", entries[0].Type)
	}

	points := int64(500)
	db.Model(&models.Bet{}).Where("id = ?", bet.ID).Update("points_earned", points)

	entries, _ = svc.GetRecentActivity(5)
	if entries[0].Type != "WIN" {
		t.Errorf("type = %s after winning resolution, want WIN", entries[0].Type)
	}
}
