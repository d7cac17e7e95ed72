package models

import (
	"strings"
	"time"
)

// bulletSeparator joins ingredient/instruction lists into a single text
// column, matching the row layout of the GeneratedDrinks sheet this service
// replaced.
const bulletSeparator = " • "

// GeneratedDrink is a persisted recipe. One row per successful generation;
// the only mutation after creation is the vote counter.
type GeneratedDrink struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	DrinkID        string `gorm:"uniqueIndex;not null" json:"drink_id"`
	GeneratorKey   string `gorm:"not null;index" json:"generator_key"`
	GeneratorLabel string `gorm:"not null" json:"generator_label"`
	FirstName      string `gorm:"not null" json:"first_name"`
	LastName       string `gorm:"not null" json:"last_name"`
	BirthMonth     int    `gorm:"not null" json:"birth_month"`
	BirthDay       int    `gorm:"not null" json:"birth_day"`
	BirthYear      int    `gorm:"not null" json:"birth_year"`
	Reason         string `gorm:"type:text" json:"reason"`
	DrinkName      string `gorm:"not null" json:"drink_name"`
	Ingredients    string `gorm:"type:text" json:"-"`
	Instructions   string `gorm:"type:text" json:"-"`
	Compatibility  string `json:"compatibility"`
	VoteCount      int    `gorm:"default:0;not null" json:"vote_count"`
}

// VoteAudit is an append-only record of every vote registration. Rows are
// never updated or deleted.
type VoteAudit struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	DrinkID       string `gorm:"not null;index" json:"drink_id"`
	PreviousVotes int    `gorm:"not null" json:"previous_votes"`
	NewVotes      int    `gorm:"not null" json:"new_votes"`
	Action        string `gorm:"not null" json:"action"`
}

// Blueprint reconstructs the recipe shape from the stored row.
func (d *GeneratedDrink) Blueprint() RecipeBlueprint {
	return RecipeBlueprint{
		DrinkName:     d.DrinkName,
		Reason:        d.Reason,
		Ingredients:   SplitBullets(d.Ingredients),
		Instructions:  SplitBullets(d.Instructions),
		Compatibility: d.Compatibility,
	}
}

// SetBlueprint copies a recipe into the stored row's columns.
func (d *GeneratedDrink) SetBlueprint(bp RecipeBlueprint) {
	d.DrinkName = bp.DrinkName
	d.Reason = bp.Reason
	d.Ingredients = JoinBullets(bp.Ingredients)
	d.Instructions = JoinBullets(bp.Instructions)
	d.Compatibility = bp.Compatibility
}

// JoinBullets flattens a list into the bullet-joined column format.
func JoinBullets(items []string) string {
	return strings.Join(items, bulletSeparator)
}

// SplitBullets undoes JoinBullets. An empty column yields an empty slice,
// not a one-element slice holding "".
func SplitBullets(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, bulletSeparator)
}
