package domain

import "strings"

// ProductSource names where a barcode result came from.
type ProductSource string

const (
	SourceLocal         ProductSource = "local"
	SourceOpenFoodFacts ProductSource = "openfoodfacts"
	SourceUPCItemDB     ProductSource = "upcitemdb"
)

// Product is a barcode lookup result.
type Product struct {
	Found               bool
	Source              ProductSource
	UPC                 string
	Name                string
	Brand               string
	Category            Category
	SuggestedExpiryDays int
	ImageURL            *string
	NutritionGrade      *string
}

// ReceiptLine is an item recognised on a receipt.
type ReceiptLine struct {
	Name                string
	Quantity            float64
	Unit                string
	SuggestedCategory   Category
	SuggestedExpiryDays int
	Confidence          float64
}

// ReceiptParse is the outcome of reading a receipt image.
type ReceiptParse struct {
	Items    []ReceiptLine
	RawText  string
	Warnings []string
}

// categoryKeywords maps product-name fragments to categories, checked in order.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryDairy, []string{"milk", "cheese", "yogurt", "butter", "cream", "yoghurt", "dairy"}},
	{CategoryMeat, []string{"beef", "pork", "lamb", "steak", "ground", "bacon", "ham", "sausage"}},
	{CategoryPoultry, []string{"chicken", "turkey", "duck", "wings", "breast", "thigh"}},
	{CategoryFish, []string{"fish", "salmon", "tuna", "shrimp", "cod", "tilapia", "seafood"}},
	{CategoryVegetables, []string{"vegetable", "lettuce", "tomato", "onion", "pepper", "carrot", "broccoli", "spinach", "potato", "celery", "cucumber", "cabbage", "salad"}},
	{CategoryFruits, []string{"fruit", "apple", "banana", "orange", "grape", "berry", "mango", "peach", "pear", "melon", "lemon", "lime"}},
	{CategoryBread, []string{"bread", "bagel", "roll", "bun", "muffin", "croissant", "toast", "bakery"}},
	{CategoryEggs, []string{"egg"}},
	{CategoryFrozen, []string{"frozen", "ice cream", "ice-cream", "pizza"}},
	{CategoryCanned, []string{"canned", "soup", "beans"}},
	{CategoryCondiments, []string{"sauce", "ketchup", "mustard", "mayo", "dressing", "oil", "vinegar", "condiment"}},
	{CategoryBeverages, []string{"juice", "soda", "water", "drink", "beverage", "tea", "coffee"}},
	{CategorySnacks, []string{"chips", "chip", "cookie", "cracker", "popcorn", "candy", "chocolate", "biscuit", "snack"}},
	{CategoryGrains, []string{"rice", "pasta", "cereal", "oat", "flour", "noodle", "grain"}},
}

// GuessCategory infers a category from free text such as a product name or tag list.
func GuessCategory(text string) Category {
	lower := strings.ToLower(text)
	for _, ck := range categoryKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				return ck.category
			}
		}
	}
	return CategoryOther
}
