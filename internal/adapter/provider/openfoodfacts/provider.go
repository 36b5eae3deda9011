// Package openfoodfacts looks up products by barcode in the Open Food Facts database.
package openfoodfacts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/provider"
)

// tagCategories maps Open Food Facts category tags to inventory categories, checked in order.
var tagCategories = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryDairy, []string{"dairy", "milk", "cheese", "yogurt", "butter", "cream"}},
	{domain.CategoryMeat, []string{"meat", "beef", "pork", "lamb", "bacon", "ham"}},
	{domain.CategoryPoultry, []string{"poultry", "chicken", "turkey"}},
	{domain.CategoryFish, []string{"fish", "seafood", "salmon", "tuna", "shrimp"}},
	{domain.CategoryVegetables, []string{"vegetable", "salad", "lettuce", "tomato", "potato"}},
	{domain.CategoryFruits, []string{"fruit", "apple", "banana", "orange", "berry"}},
	{domain.CategoryBread, []string{"bread", "bakery", "pastry", "baked"}},
	{domain.CategoryEggs, []string{"egg"}},
	{domain.CategoryFrozen, []string{"frozen", "ice-cream", "gelato"}},
	{domain.CategoryCanned, []string{"canned", "preserved", "jarred"}},
	{domain.CategoryCondiments, []string{"sauce", "condiment", "dressing", "oil", "vinegar"}},
	{domain.CategoryBeverages, []string{"beverage", "drink", "juice", "soda", "water", "tea", "coffee"}},
	{domain.CategorySnacks, []string{"snack", "chip", "cookie", "candy", "chocolate", "biscuit"}},
	{domain.CategoryGrains, []string{"grain", "cereal", "rice", "pasta", "flour"}},
}

// Provider queries the Open Food Facts product API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given base URL.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "openfoodfacts"),
	}
}

// Name identifies the provider in errors and logs.
func (p *Provider) Name() string { return string(domain.SourceOpenFoodFacts) }

// Lookup returns the product for upc, or nil, nil when Open Food Facts does not know it.
func (p *Provider) Lookup(ctx context.Context, upc string) (*domain.Product, error) {
	reqURL := p.baseURL + "/api/v0/product/" + url.PathEscape(upc) + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: create request: %w", err)
	}
	req.Header.Set("User-Agent", provider.UserAgent)

	resp, err := provider.DoWithRetry(ctx, p.httpClient, req, p.log)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("openfoodfacts: invalid json")
	}

	doc := gjson.ParseBytes(body)
	if doc.Get("status").Int() != 1 {
		return nil, nil
	}

	product := doc.Get("product")
	name := product.Get("product_name").String()
	if name == "" {
		name = product.Get("product_name_en").String()
	}
	if name == "" {
		return nil, nil
	}

	var tags []string
	for _, t := range product.Get("categories_tags").Array() {
		tags = append(tags, t.String())
	}
	category := mapTags(tags)

	out := &domain.Product{
		Found:               true,
		Source:              domain.SourceOpenFoodFacts,
		UPC:                 upc,
		Name:                name,
		Brand:               product.Get("brands").String(),
		Category:            category,
		SuggestedExpiryDays: domain.ShelfLife(category),
	}
	if img := product.Get("image_url").String(); img != "" {
		out.ImageURL = &img
	}
	if grade := product.Get("nutrition_grades").String(); grade != "" {
		out.NutritionGrade = &grade
	}

	p.log.DebugContext(ctx, "openfoodfacts hit", slog.String("upc", upc), slog.String("category", category.String()))
	return out, nil
}

func mapTags(tags []string) domain.Category {
	joined := strings.ToLower(strings.Join(tags, " "))
	for _, tc := range tagCategories {
		for _, kw := range tc.keywords {
			if strings.Contains(joined, kw) {
				return tc.category
			}
		}
	}
	return domain.CategoryOther
}
