package models

import (
	"time"

	"github.com/google/uuid"
)

// Bet links one user to one course. At most one bet per (user, course)
// pair, enforced by the composite unique index. Immutable after creation
// except for PointsEarned, written once at resolution.
type Bet struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_bet_user_course;index" json:"user_id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bet_user_course;index" json:"course_id"`
	GuessedMinutes int       `gorm:"not null" json:"guessed_minutes"`
	Amount         int64     `gorm:"not null" json:"amount"`
	AppliedItem    *ItemType `gorm:"size:20" json:"applied_item"`
	PointsEarned   *int64    `json:"points_earned"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course         *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Bet) TableName() string {
	return "bets"
}

// PlaceBetRequest represents a user's wager on a course
type PlaceBetRequest struct {
	CourseID    string `json:"course_id" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	AppliedItem string `json:"applied_item" binding:"omitempty"`
}

// BetResponse renders a bet with HH:mm clock strings at the boundary
type BetResponse struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"course_id"`
	Subject      string    `json:"subject"`
	GuessedTime  string    `json:"guessed_time"`
	Amount       int64     `json:"amount"`
	AppliedItem  *ItemType `json:"applied_item"`
	PointsEarned *int64    `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActivityEntry is one row of the recent-activity feed
type ActivityEntry struct {
	ID      string    `json:"id"`
	User    string    `json:"user"`
	Subject string    `json:"subject"`
	Amount  int64     `json:"amount"`
	Type    string    `json:"type"` // "WIN" once resolved with a positive payout, else "BET"
	Time    time.Time `json:"time"`
}
