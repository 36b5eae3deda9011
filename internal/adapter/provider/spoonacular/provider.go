// Package spoonacular finds recipes by ingredient with the Spoonacular API.
package spoonacular

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/provider"
)

// maxIngredients is how many ingredient names the search endpoint accepts.
const maxIngredients = 10

// Provider calls the Spoonacular recipe API.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty apiKey leaves it unconfigured.
func NewProvider(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "spoonacular"),
	}
}

// Configured reports whether an API key is set.
func (p *Provider) Configured() bool { return p.apiKey != "" }

// FindByIngredients returns recipes that maximise use of the given ingredients.
func (p *Provider) FindByIngredients(ctx context.Context, ingredients []string, number int) ([]provider.RecipeMatch, error) {
	if len(ingredients) > maxIngredients {
		ingredients = ingredients[:maxIngredients]
	}

	params := url.Values{
		"apiKey":       {p.apiKey},
		"ingredients":  {strings.Join(ingredients, ",")},
		"number":       {strconv.Itoa(number)},
		"ranking":      {"2"},
		"ignorePantry": {"true"},
	}

	body, status, err := p.get(ctx, "/recipes/findByIngredients", params)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("spoonacular: unexpected status %d", status)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil, fmt.Errorf("spoonacular: expected array response")
	}

	out := make([]provider.RecipeMatch, 0, len(doc.Array()))
	for _, r := range doc.Array() {
		m := provider.RecipeMatch{
			ID:                    int(r.Get("id").Int()),
			Title:                 r.Get("title").String(),
			UsedIngredientCount:   int(r.Get("usedIngredientCount").Int()),
			MissedIngredientCount: int(r.Get("missedIngredientCount").Int()),
		}
		if img := r.Get("image").String(); img != "" {
			m.Image = &img
		}
		for _, ing := range r.Get("usedIngredients").Array() {
			m.UsedIngredients = append(m.UsedIngredients, strings.ToLower(ing.Get("name").String()))
		}
		out = append(out, m)
	}

	p.log.DebugContext(ctx, "spoonacular search", slog.Int("ingredients", len(ingredients)), slog.Int("results", len(out)))
	return out, nil
}

// Information returns full recipe details, or nil, nil for an unknown id.
func (p *Provider) Information(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	params := url.Values{
		"apiKey":           {p.apiKey},
		"includeNutrition": {"true"},
	}

	body, status, err := p.get(ctx, "/recipes/"+strconv.Itoa(id)+"/information", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("spoonacular: unexpected status %d", status)
	}

	r := gjson.ParseBytes(body)
	d := &domain.RecipeDetail{
		ID:             int(r.Get("id").Int()),
		Title:          r.Get("title").String(),
		ReadyInMinutes: intOr(r.Get("readyInMinutes"), 30),
		Servings:       intOr(r.Get("servings"), 4),
		Ingredients:    []domain.RecipeIngredient{},
		Calories:       int(nutrient(r, "Calories")),
		Protein:        grams(nutrient(r, "Protein")),
		Fat:            grams(nutrient(r, "Fat")),
		Carbs:          grams(nutrient(r, "Carbohydrates")),
	}
	d.Image = optString(r.Get("image"))
	d.SourceURL = optString(r.Get("sourceUrl"))
	d.Summary = optString(r.Get("summary"))
	d.Instructions = optString(r.Get("instructions"))

	for _, ing := range r.Get("extendedIngredients").Array() {
		d.Ingredients = append(d.Ingredients, domain.RecipeIngredient{
			Name:   ing.Get("name").String(),
			Amount: ing.Get("amount").Float(),
			Unit:   ing.Get("unit").String(),
		})
	}
	return d, nil
}

func (p *Provider) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("spoonacular: create request: %w", err)
	}

	resp, err := provider.DoWithRetry(ctx, p.httpClient, req, p.log)
	if err != nil {
		return nil, 0, fmt.Errorf("spoonacular: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("spoonacular: read body: %w", err)
	}
	if resp.StatusCode == http.StatusOK && !gjson.ValidBytes(body) {
		return nil, 0, fmt.Errorf("spoonacular: invalid json")
	}
	return body, resp.StatusCode, nil
}

func nutrient(r gjson.Result, name string) float64 {
	return r.Get(`nutrition.nutrients.#(name=="` + name + `").amount`).Float()
}

func grams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "g"
}

func intOr(v gjson.Result, def int) int {
	if !v.Exists() || v.Type == gjson.Null {
		return def
	}
	return int(v.Int())
}

func optString(v gjson.Result) *string {
	s := v.String()
	if s == "" {
		return nil
	}
	return &s
}
