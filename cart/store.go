package cart

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-order-api/models"
)

// Store is the per-user cart persistence boundary. The whole line list is
// read and written wholesale; there is no partial-update protocol.
// Concurrent writers for the same user resolve last-write-wins.
type Store interface {
	Load(userID uint) (models.CartLines, error)
	Save(userID uint, lines models.CartLines) error
	Clear(userID uint) error
}

// GormStore keeps one cart row per user in the database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Load returns the user's cart lines. A user with no cart row gets an
// empty cart, not an error.
func (s *GormStore) Load(userID uint) (models.CartLines, error) {
	var row models.Cart
	err := s.DB.First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartLines{}, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Lines, nil
}

// Save replaces the user's cart row with lines.
func (s *GormStore) Save(userID uint, lines models.CartLines) error {
	row := models.Cart{UserID: userID, Lines: lines}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lines", "updated_at"}),
	}).Create(&row).Error
}

// Clear removes the user's cart row. Clearing an absent cart is a no-op.
func (s *GormStore) Clear(userID uint) error {
	return s.DB.Delete(&models.Cart{}, "user_id = ?", userID).Error
}
