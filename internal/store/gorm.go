package store

import (
	"errors"
	"fmt"

	"github.com/pourtrait/pourtrait-api/internal/models"
	"gorm.io/gorm"
)

// GormStore persists drinks through GORM. Schema bootstrap happens once at
// startup via database.Migrate, so every method assumes the tables exist.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AppendDrink(drink *models.GeneratedDrink) error {
	if err := s.db.Create(drink).Error; err != nil {
		return fmt.Errorf("append drink: %w", err)
	}
	return nil
}

func (s *GormStore) ListDrinks() ([]models.GeneratedDrink, error) {
	var drinks []models.GeneratedDrink
	if err := s.db.Order("id asc").Find(&drinks).Error; err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	return drinks, nil
}

func (s *GormStore) GetDrink(drinkID string) (*models.GeneratedDrink, error) {
	var drink models.GeneratedDrink
	err := s.db.Where("drink_id = ?", drinkID).First(&drink).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDrinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get drink: %w", err)
	}
	return &drink, nil
}

// IncrementVote reads the current count and writes count+1. Deliberately not
// wrapped in a locking transaction; see the DrinkStore doc for the race.
func (s *GormStore) IncrementVote(drinkID string) (int, error) {
	drink, err := s.GetDrink(drinkID)
	if err != nil {
		return 0, err
	}
	newCount := drink.VoteCount + 1
	if err := s.db.Model(drink).Update("vote_count", newCount).Error; err != nil {
		return 0, fmt.Errorf("increment vote: %w", err)
	}
	return newCount, nil
}

func (s *GormStore) AppendVoteAudit(entry *models.VoteAudit) error {
	if err := s.db.Create(entry).Error; err != nil {
		return fmt.Errorf("append vote audit: %w", err)
	}
	return nil
}
