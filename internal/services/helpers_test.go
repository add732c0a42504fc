package services

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hugolate/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Bet{},
		&models.UserItem{},
		&models.Badge{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, balance int64, streak, bestStreak int) *models.User {
	t.Helper()

	user := models.User{
		Name:          name,
		Email:         name + "@hugolate.test",
		Password:      "hashed",
		Role:          models.RoleUser,
		WalletBalance: balance,
		CurrentStreak: streak,
		BestStreak:    bestStreak,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return &user
}

func createTestCourse(t *testing.T, db *gorm.DB, scheduledMinutes int) *models.Course {
	t.Helper()

	course := models.Course{
		ID:               uuid.New(),
		Subject:          "Algo",
		Professor:        "Hugo",
		ScheduledMinutes: scheduledMinutes,
		Status:           models.CourseStatusOpen,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return &course
}

func createTestBet(t *testing.T, db *gorm.DB, userID uint, courseID uuid.UUID, guessedMinutes int, amount int64, item *models.ItemType) *models.Bet {
	t.Helper()

	bet := models.Bet{
		ID:             uuid.New(),
		UserID:         userID,
		CourseID:       courseID,
		GuessedMinutes: guessedMinutes,
		Amount:         amount,
		AppliedItem:    item,
	}
	if err := db.Create(&bet).Error; err != nil {
		t.Fatalf("failed to create bet: %v", err)
	}
	return &bet
}

func reloadUser(t *testing.T, db *gorm.DB, userID uint) *models.User {
	t.Helper()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		t.Fatalf("failed to reload user %d: %v", userID, err)
	}
	return &user
}

func reloadBet(t *testing.T, db *gorm.DB, betID uuid.UUID) *models.Bet {
	t.Helper()

	var bet models.Bet
	if err := db.First(&bet, "id = ?", betID).Error; err != nil {
		t.Fatalf("failed to reload bet %s: %v", betID, err)
	}
	return &bet
}
