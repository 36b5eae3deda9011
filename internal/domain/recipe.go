package domain

// RecipeSummary is a ranked recipe suggestion.
type RecipeSummary struct {
	ID                      int
	Title                   string
	Image                   *string
	ReadyInMinutes          int
	Servings                int
	Score                   float64
	UsesExpiring            []string
	MissingIngredientsCount int
	UsedIngredientsCount    int
}

// RecipeIngredient is one ingredient line of a recipe.
type RecipeIngredient struct {
	Name   string
	Amount float64
	Unit   string
	HaveIt bool
}

// RecipeDetail is a full recipe with instructions and nutrition.
type RecipeDetail struct {
	ID             int
	Title          string
	Image          *string
	SourceURL      *string
	ReadyInMinutes int
	Servings       int
	Summary        *string
	Instructions   *string
	Ingredients    []RecipeIngredient
	Calories       int
	Protein        string
	Fat            string
	Carbs          string
}

// RecipeQuery describes what to search for.
type RecipeQuery struct {
	Ingredients []string
	Expiring    []string
	Diet        *string
	Cuisine     *string
	MaxTime     *int
	Limit       int
}
