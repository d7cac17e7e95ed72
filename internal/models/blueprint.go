package models

// RecipeBlueprint is the structured recipe shape shared by the deterministic
// generators and the remote override. All quantities live inside the
// ingredient strings; there are no numeric fields.
type RecipeBlueprint struct {
	DrinkName     string   `json:"drinkName"`
	Reason        string   `json:"reason"`
	Ingredients   []string `json:"ingredients"`
	Instructions  []string `json:"instructions"`
	Compatibility string   `json:"compatibility"`
}
