// Package store abstracts the row-oriented drink repository so handlers and
// tests can run against any backing implementation.
package store

import (
	"errors"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// ErrDrinkNotFound is returned when no row matches the requested drink id.
var ErrDrinkNotFound = errors.New("drink not found")

// DrinkStore is the persistence boundary. Implementations append and list
// drinks in insertion order and keep a write-once vote audit trail.
//
// IncrementVote is a read-modify-write with no compare-and-swap, so
// concurrent votes for the same drink can lose updates.
type DrinkStore interface {
	AppendDrink(drink *models.GeneratedDrink) error
	ListDrinks() ([]models.GeneratedDrink, error)
	GetDrink(drinkID string) (*models.GeneratedDrink, error)
	IncrementVote(drinkID string) (int, error)
	AppendVoteAudit(entry *models.VoteAudit) error
}
