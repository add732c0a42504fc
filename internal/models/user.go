package models

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents an agent in the precinct. The wallet balance, current
// streak and best streak are only ever written by bet placement and
// course resolution, always inside a transaction.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Name          string     `gorm:"not null" json:"name"`
	Password      string     `gorm:"not null" json:"-"`
	Role          UserRole   `gorm:"size:20;not null;default:USER" json:"role"`
	WalletBalance int64      `gorm:"not null;default:0" json:"wallet_balance"`
	CurrentStreak int        `gorm:"not null;default:0" json:"current_streak"`
	BestStreak    int        `gorm:"not null;default:0" json:"best_streak"`
	Bets          []Bet      `gorm:"constraint:OnDelete:CASCADE" json:"bets,omitempty"`
	Items         []UserItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Badges        []Badge    `gorm:"constraint:OnDelete:CASCADE" json:"badges,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserItem tracks how many consumables of one type a user owns.
// Quantity never goes below zero; applying an item decrements it by one.
type UserItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_item" json:"user_id"`
	ItemType  ItemType  `gorm:"size:20;not null;uniqueIndex:idx_user_item" json:"item_type"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserItem) TableName() string {
	return "user_items"
}

// Badge is an append-only achievement marker. The composite unique index
// makes re-awarding a no-op at the store level.
type Badge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"user_id"`
	Type      BadgeType `gorm:"size:30;not null;uniqueIndex:idx_user_badge" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (Badge) TableName() string {
	return "badges"
}

// LoginRequest represents an email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest represents an admin request to create a new agent
type CreateUserRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"omitempty,min=6"`
	InitialBalance *int64 `json:"initial_balance" binding:"omitempty,gte=0"`
	Role           string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// LeaderboardEntry is one row of the balance ranking
type LeaderboardEntry struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	WalletBalance int64  `json:"wallet_balance"`
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
	Rank          string `json:"rank"`
}
