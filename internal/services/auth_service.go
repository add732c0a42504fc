package services

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hugolate/internal/models"
)

// DefaultPassword is assigned when an admin creates an agent without one.
const DefaultPassword = "hugo123"

// AuthService handles authentication business logic
type AuthService struct {
	db             *gorm.DB
	initialBalance int64
}

// NewAuthService creates a new AuthService
func NewAuthService(db *gorm.DB, initialBalance int64) *AuthService {
	return &AuthService{db: db, initialBalance: initialBalance}
}

// Login verifies an email/password pair and returns the matching user
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	log.Printf("User logged in: email=%s (ID: %d)", user.Email, user.ID)
	return &user, nil
}

// CreateUser registers a new agent. Used by the admin endpoint and the
// seed tool. An empty password falls back to the precinct default.
func (s *AuthService) CreateUser(req *models.CreateUserRequest) (*models.User, error) {
	password := req.Password
	if password == "" {
		password = DefaultPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleUser
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	// nil means "not provided"; an explicit 0 creates an empty wallet
	balance := s.initialBalance
	if req.InitialBalance != nil {
		balance = *req.InitialBalance
	}

	user := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hashed),
		Role:          role,
		WalletBalance: balance,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("New user created: email=%s (ID: %d)", user.Email, user.ID)
	return &user, nil
}
