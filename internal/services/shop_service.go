package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"hugolate/internal/models"
)

// ShopService sells consumables against the wallet
type ShopService struct {
	db *gorm.DB
}

// NewShopService creates a new ShopService
func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{db: db}
}

// ListItems returns the fixed catalog
func (s *ShopService) ListItems() []models.ShopItem {
	items := make([]models.ShopItem, 0, len(models.ShopCatalog))
	for _, item := range models.ShopCatalog {
		items = append(items, item)
	}
	return items
}

// BuyItem debits the item price and increments the inventory row in one
// transaction. Returns the new wallet balance.
func (s *ShopService) BuyItem(userID uint, itemType models.ItemType) (int64, error) {
	item, ok := models.ShopCatalog[itemType]
	if !ok {
		return 0, ErrUnknownItem
	}

	var newBalance int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUserNotFound
			}
			return err
		}

		if user.WalletBalance < item.Price {
			return ErrInsufficientBalance
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("wallet_balance", gorm.Expr("wallet_balance - ?", item.Price)).Error; err != nil {
			return err
		}

		// Upsert the inventory row
		var inventory models.UserItem
		err := tx.Where("user_id = ? AND item_type = ?", userID, itemType).First(&inventory).Error
		if err == gorm.ErrRecordNotFound {
			inventory = models.UserItem{UserID: userID, ItemType: itemType, Quantity: 1}
			if err := tx.Create(&inventory).Error; err != nil {
				return fmt.Errorf("failed to create inventory row: %w", err)
			}
		} else if err != nil {
			return err
		} else {
			if err := tx.Model(&inventory).
				Update("quantity", gorm.Expr("quantity + 1")).Error; err != nil {
				return fmt.Errorf("failed to increment inventory: %w", err)
			}
		}

		newBalance = user.WalletBalance - item.Price
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Item purchased: user=%d item=%s price=%d", userID, itemType, item.Price)
	return newBalance, nil
}
