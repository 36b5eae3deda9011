package recipe

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// catalogRecipe is a built-in recipe used when no recipe API key is configured.
type catalogRecipe struct {
	ID             int
	Title          string
	Image          string
	ReadyInMinutes int
	Servings       int
	Ingredients    []string
	Instructions   string
}

var catalog = []catalogRecipe{
	{
		ID: 1001, Title: "Masala Chai", ReadyInMinutes: 15, Servings: 4,
		Image:        "https://www.recipetineats.com/wp-content/uploads/2022/10/Masala-Chai_1.jpg",
		Ingredients:  []string{"tea", "milk", "ginger", "cardamom", "cinnamon", "sugar"},
		Instructions: "1. Boil water with ginger, cardamom and cinnamon for 5 mins.\n2. Add tea and boil for 2 mins.\n3. Add milk and sugar.\n4. Simmer for 5 mins and strain.",
	},
	{
		ID: 1002, Title: "Ginger Tea (Adrak Chai)", ReadyInMinutes: 10, Servings: 2,
		Image:        "https://www.teaforturmeric.com/wp-content/uploads/2022/01/Ginger-Tea-Social-1.jpg",
		Ingredients:  []string{"tea", "ginger", "milk", "sugar"},
		Instructions: "1. Crush ginger and boil in water for 3 mins.\n2. Add tea and simmer.\n3. Add milk and sugar to taste.\n4. Strain and serve hot.",
	},
	{
		ID: 1003, Title: "Elaichi Tea (Cardamom Tea)", ReadyInMinutes: 10, Servings: 2,
		Image:        "https://www.teaforturmeric.com/wp-content/uploads/2021/12/Cardamom-Tea-5.jpg",
		Ingredients:  []string{"tea", "cardamom", "milk", "sugar"},
		Instructions: "1. Crush cardamom and boil in water.\n2. Add tea and simmer 2 mins.\n3. Add milk and sugar.\n4. Strain and serve.",
	},
	{
		ID: 1004, Title: "Lemon Tea", ReadyInMinutes: 8, Servings: 2,
		Image:        "https://i.pinimg.com/originals/6a/eb/cf/6aebcf04a5b12c7f64e3d94e5e1a77a9.jpg",
		Ingredients:  []string{"tea", "lemon", "honey", "sugar"},
		Instructions: "1. Boil water and add tea.\n2. Steep for 3 mins.\n3. Strain and add lemon juice.\n4. Sweeten with honey or sugar.",
	},
	{
		ID: 1010, Title: "Paneer Butter Masala", ReadyInMinutes: 40, Servings: 4,
		Image:        "https://www.cubesnjuliennes.com/wp-content/uploads/2020/01/Paneer-Butter-Masala-Recipe.jpg",
		Ingredients:  []string{"paneer", "butter", "tomato", "cream", "onion", "ginger", "garlic"},
		Instructions: "1. Saute onion, ginger and garlic.\n2. Add tomato puree and cook.\n3. Add cream and butter.\n4. Add paneer cubes and simmer.",
	},
	{
		ID: 1011, Title: "Kheer (Rice Pudding)", ReadyInMinutes: 45, Servings: 6,
		Image:        "https://www.vegrecipesofindia.com/wp-content/uploads/2021/04/kheer-recipe-1.jpg",
		Ingredients:  []string{"milk", "rice", "sugar", "cardamom", "almonds", "cashews"},
		Instructions: "1. Wash and soak rice for 30 mins.\n2. Boil milk and add rice.\n3. Cook on low heat until thick.\n4. Add sugar, cardamom and nuts.",
	},
	{
		ID: 1020, Title: "Dal Tadka", ReadyInMinutes: 35, Servings: 4,
		Image:        "https://www.indianhealthyrecipes.com/wp-content/uploads/2022/01/dal-tadka-recipe.jpg",
		Ingredients:  []string{"toor dal", "onion", "tomato", "cumin", "mustard", "turmeric", "red chilli"},
		Instructions: "1. Pressure cook dal with turmeric.\n2. Temper cumin, mustard and onion.\n3. Add tomatoes and cook.\n4. Mix the tempering into the dal.",
	},
	{
		ID: 1021, Title: "Dal Makhani", ReadyInMinutes: 60, Servings: 6,
		Image:        "https://www.indianhealthyrecipes.com/wp-content/uploads/2022/03/dal-makhani-recipe.jpg",
		Ingredients:  []string{"urad dal", "rajma", "butter", "cream", "tomato", "onion", "ginger", "garlic"},
		Instructions: "1. Soak and pressure cook the dals.\n2. Make gravy with butter, onion and tomato.\n3. Add cooked dal and simmer.\n4. Finish with cream.",
	},
	{
		ID: 1030, Title: "Vegetable Pulao", ReadyInMinutes: 30, Servings: 4,
		Image:        "https://www.indianhealthyrecipes.com/wp-content/uploads/2022/02/veg-pulao-recipe.jpg",
		Ingredients:  []string{"rice", "carrot", "beans", "peas", "onion", "cumin", "bay leaf"},
		Instructions: "1. Saute whole spices and onion.\n2. Add vegetables and rice.\n3. Add water and cook.\n4. Garnish with coriander.",
	},
	{
		ID: 1031, Title: "Lemon Rice", ReadyInMinutes: 20, Servings: 4,
		Image:        "https://www.indianhealthyrecipes.com/wp-content/uploads/2021/07/lemon-rice-recipe.jpg",
		Ingredients:  []string{"rice", "lemon", "mustard", "turmeric", "curry leaves", "peanuts"},
		Instructions: "1. Cook rice and let it cool.\n2. Temper mustard and turmeric.\n3. Add peanuts and curry leaves.\n4. Mix with rice and lemon juice.",
	},
	{
		ID: 1040, Title: "Aloo Paratha", ReadyInMinutes: 40, Servings: 4,
		Image:        "https://www.indianhealthyrecipes.com/wp-content/uploads/2021/08/aloo-paratha-recipe.jpg",
		Ingredients:  []string{"atta", "potato", "cumin", "coriander", "green chilli", "butter"},
		Instructions: "1. Boil and mash potatoes.\n2. Add spices for the filling.\n3. Make dough and stuff with filling.\n4. Cook on a tawa with butter.",
	},
	{
		ID: 1050, Title: "Vegetable Maggi", ReadyInMinutes: 15, Servings: 2,
		Image:        "https://i.ytimg.com/vi/rNQhMe7K4I0/maxresdefault.jpg",
		Ingredients:  []string{"maggi", "noodles", "carrot", "beans", "peas", "onion"},
		Instructions: "1. Boil water and add vegetables.\n2. Add noodles and tastemaker.\n3. Cook for 2-3 minutes.\n4. Serve hot.",
	},
	{
		ID: 1051, Title: "Masala Maggi", ReadyInMinutes: 12, Servings: 2,
		Image:        "https://i.ytimg.com/vi/dNHKBSi2cFo/maxresdefault.jpg",
		Ingredients:  []string{"maggi", "noodles", "onion", "tomato", "green chilli"},
		Instructions: "1. Saute onions and tomatoes.\n2. Add water and boil.\n3. Add noodles and tastemaker.\n4. Cook and serve.",
	},
	{
		ID: 1060, Title: "Masala Omelette", ReadyInMinutes: 10, Servings: 1,
		Image:        "https://www.indianhealthyrecipes.com/wp-content/uploads/2021/11/masala-omelette-recipe.jpg",
		Ingredients:  []string{"eggs", "onion", "tomato", "green chilli", "coriander"},
		Instructions: "1. Beat eggs with salt.\n2. Add chopped onion, tomato and chilli.\n3. Cook in an oiled pan.\n4. Fold and serve.",
	},
	{
		ID: 1061, Title: "Bread Omelette", ReadyInMinutes: 15, Servings: 2,
		Image:        "https://i.ytimg.com/vi/f7C_eE9N7Oc/maxresdefault.jpg",
		Ingredients:  []string{"eggs", "bread", "onion", "butter"},
		Instructions: "1. Beat eggs with salt and pepper.\n2. Dip bread in the egg mixture.\n3. Toast on a buttered pan.\n4. Serve hot.",
	},
	{
		ID: 1070, Title: "Bhel Puri", ReadyInMinutes: 10, Servings: 4,
		Image:        "https://www.indianhealthyrecipes.com/wp-content/uploads/2022/07/bhel-puri-recipe.jpg",
		Ingredients:  []string{"puffed rice", "onion", "tomato", "coriander", "lemon", "chutney", "sev"},
		Instructions: "1. Mix puffed rice with onion and tomato.\n2. Add chutneys and lemon juice.\n3. Top with sev and coriander.\n4. Serve immediately.",
	},
}

const (
	catalogFallbackCount = 5
	catalogFallbackScore = 5
)

func catalogByID(id int) (catalogRecipe, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return catalogRecipe{}, false
}

// overlaps reports whether either name contains the other.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// scoreCatalog ranks built-in recipes: +10 per matched ingredient, -2 per
// missing one and +15 per expiring ingredient the recipe uses. Recipes with
// no match are dropped; when nothing matches the first few are suggested.
func scoreCatalog(ingredients, expiring []string, maxTime *int) []domain.RecipeSummary {
	var out []domain.RecipeSummary
	for _, r := range catalog {
		if maxTime != nil && r.ReadyInMinutes > *maxTime {
			continue
		}

		matches := 0
		for _, have := range ingredients {
			for _, need := range r.Ingredients {
				if overlaps(have, need) {
					matches++
					break
				}
			}
		}
		if matches == 0 {
			continue
		}
		missing := max(len(r.Ingredients)-matches, 0)

		score := matches*10 - missing*2
		usesExpiring := []string{}
		for _, exp := range expiring {
			for _, need := range r.Ingredients {
				if overlaps(exp, need) {
					score += 15
					usesExpiring = append(usesExpiring, exp)
					break
				}
			}
		}

		out = append(out, summaryOf(r, float64(max(score, 0)), usesExpiring, missing, matches))
	}

	if len(out) > 0 {
		return out
	}

	for _, r := range catalog[:catalogFallbackCount] {
		out = append(out, summaryOf(r, catalogFallbackScore, []string{}, len(r.Ingredients), 0))
	}
	return out
}

func summaryOf(r catalogRecipe, score float64, usesExpiring []string, missing, used int) domain.RecipeSummary {
	img := r.Image
	return domain.RecipeSummary{
		ID:                      r.ID,
		Title:                   r.Title,
		Image:                   &img,
		ReadyInMinutes:          r.ReadyInMinutes,
		Servings:                r.Servings,
		Score:                   score,
		UsesExpiring:            usesExpiring,
		MissingIngredientsCount: missing,
		UsedIngredientsCount:    used,
	}
}

func catalogDetail(r catalogRecipe) *domain.RecipeDetail {
	img := r.Image
	summary := fmt.Sprintf("A home-style Indian recipe for %s.", r.Title)
	instructions := r.Instructions

	d := &domain.RecipeDetail{
		ID:             r.ID,
		Title:          r.Title,
		Image:          &img,
		ReadyInMinutes: r.ReadyInMinutes,
		Servings:       r.Servings,
		Summary:        &summary,
		Instructions:   &instructions,
		Ingredients:    make([]domain.RecipeIngredient, len(r.Ingredients)),
		Calories:       250,
		Protein:        "8g",
		Fat:            "10g",
		Carbs:          "30g",
	}
	for i, name := range r.Ingredients {
		d.Ingredients[i] = domain.RecipeIngredient{Name: name, Amount: 1, Unit: "as needed"}
	}
	return d
}
