package store

import (
	"errors"
	"testing"

	"github.com/pourtrait/pourtrait-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDrink(id, name string) *models.GeneratedDrink {
	return &models.GeneratedDrink{
		DrinkID:        id,
		GeneratorKey:   "cosmic",
		GeneratorLabel: "Cosmic Mixologist",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		BirthMonth:     12,
		BirthDay:       10,
		BirthYear:      1985,
		DrinkName:      name,
	}
}

func TestMemoryStore_AppendAndList(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.AppendDrink(newDrink("a", "First")))
	require.NoError(t, s.AppendDrink(newDrink("b", "Second")))
	require.NoError(t, s.AppendDrink(newDrink("c", "Third")))

	drinks, err := s.ListDrinks()
	require.NoError(t, err)
	require.Len(t, drinks, 3)

	// Insertion order.
	assert.Equal(t, "First", drinks[0].DrinkName)
	assert.Equal(t, "Second", drinks[1].DrinkName)
	assert.Equal(t, "Third", drinks[2].DrinkName)
	assert.False(t, drinks[0].CreatedAt.IsZero())
}

func TestMemoryStore_GetDrink(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.AppendDrink(newDrink("a", "First")))

	drink, err := s.GetDrink("a")
	require.NoError(t, err)
	assert.Equal(t, "First", drink.DrinkName)

	_, err = s.GetDrink("missing")
	assert.True(t, errors.Is(err, ErrDrinkNotFound))
}

func TestMemoryStore_IncrementVote(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.AppendDrink(newDrink("a", "First")))

	count, err := s.IncrementVote("a")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = s.IncrementVote("a")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	drink, err := s.GetDrink("a")
	require.NoError(t, err)
	assert.Equal(t, 2, drink.VoteCount)
}

func TestMemoryStore_IncrementVote_NotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.IncrementVote("missing")
	assert.True(t, errors.Is(err, ErrDrinkNotFound))
	assert.Empty(t, s.VoteAudits())
}

func TestMemoryStore_VoteAudits(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.AppendVoteAudit(&models.VoteAudit{
		DrinkID:       "a",
		PreviousVotes: 0,
		NewVotes:      1,
		Action:        "vote",
	}))

	audits := s.VoteAudits()
	require.Len(t, audits, 1)
	assert.Equal(t, "a", audits[0].DrinkID)
	assert.Equal(t, 0, audits[0].PreviousVotes)
	assert.Equal(t, 1, audits[0].NewVotes)
	assert.False(t, audits[0].CreatedAt.IsZero())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.AppendDrink(newDrink("a", "First")))

	drink, err := s.GetDrink("a")
	require.NoError(t, err)
	drink.DrinkName = "Mutated"

	fresh, err := s.GetDrink("a")
	require.NoError(t, err)
	assert.Equal(t, "First", fresh.DrinkName)
}
