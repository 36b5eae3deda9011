// Package provider holds types and helpers shared by external API adapters.
package provider

// RecipeMatch is a recipe returned by an ingredient search.
type RecipeMatch struct {
	ID                    int
	Title                 string
	Image                 *string
	UsedIngredients       []string
	UsedIngredientCount   int
	MissedIngredientCount int
}
