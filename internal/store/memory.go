package store

import (
	"sync"
	"time"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// MemoryStore is a mutex-guarded in-memory DrinkStore. It backs handler and
// engine tests so nothing in the test suite needs a database.
type MemoryStore struct {
	mu     sync.Mutex
	drinks map[string]*models.GeneratedDrink
	order  []string
	audits []models.VoteAudit
	nextID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drinks: make(map[string]*models.GeneratedDrink),
	}
}

func (s *MemoryStore) AppendDrink(drink *models.GeneratedDrink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	drink.ID = s.nextID
	if drink.CreatedAt.IsZero() {
		drink.CreatedAt = time.Now().UTC()
	}
	stored := *drink
	s.drinks[drink.DrinkID] = &stored
	s.order = append(s.order, drink.DrinkID)
	return nil
}

func (s *MemoryStore) ListDrinks() ([]models.GeneratedDrink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.GeneratedDrink, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.drinks[id])
	}
	return out, nil
}

func (s *MemoryStore) GetDrink(drinkID string) (*models.GeneratedDrink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink, ok := s.drinks[drinkID]
	if !ok {
		return nil, ErrDrinkNotFound
	}
	copied := *drink
	return &copied, nil
}

func (s *MemoryStore) IncrementVote(drinkID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink, ok := s.drinks[drinkID]
	if !ok {
		return 0, ErrDrinkNotFound
	}
	drink.VoteCount++
	return drink.VoteCount, nil
}

func (s *MemoryStore) AppendVoteAudit(entry *models.VoteAudit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.audits = append(s.audits, *entry)
	return nil
}

// VoteAudits returns a copy of the audit trail, for test assertions.
func (s *MemoryStore) VoteAudits() []models.VoteAudit {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.VoteAudit, len(s.audits))
	copy(out, s.audits)
	return out
}
