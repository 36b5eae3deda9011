package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/provider"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

const (
	defaultLimit      = 15
	maxLimit          = 50
	expiringDays      = 3
	upcomingDays      = 7
	fallbackItems     = 20
	urgentDays        = 2
	remoteIngredients = 10
	remoteReadyIn     = 30
	remoteServings    = 4
	detailCacheTTL    = 24 * time.Hour
)

// RecommendInput tunes recommendations.
type RecommendInput struct {
	UseExpiring bool
	MaxTime     *int
	Limit       int
}

func (i *RecommendInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 50"})
	}
	if i.MaxTime != nil && *i.MaxTime <= 0 {
		errs = append(errs, domain.FieldError{Field: "max_time", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	if i.Limit == 0 {
		i.Limit = defaultLimit
	}
	return nil
}

// Recommend ranks recipes by how well they use the scope's items, favouring
// the ones about to expire. Items expiring within 3 days are used (7 without
// UseExpiring); with none, up to 20 active items stand in.
func (s *Service) Recommend(ctx context.Context, in RecommendInput) ([]domain.RecipeSummary, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("recipe.Recommend: %w", err)
	}
	scope := domain.Scope{UserID: user.ID, FamilyID: user.FamilyID}
	today := domain.LocalDate(s.now(), user.Location())

	days := upcomingDays
	if in.UseExpiring {
		days = expiringDays
	}
	items, err := s.items.ListExpiring(ctx, scope, today, days)
	if err != nil {
		return nil, fmt.Errorf("recipe.Recommend: %w", err)
	}
	if len(items) == 0 {
		items, err = s.items.ListActive(ctx, scope, fallbackItems)
		if err != nil {
			return nil, fmt.Errorf("recipe.Recommend: %w", err)
		}
	}
	if len(items) == 0 {
		return []domain.RecipeSummary{}, nil
	}

	ingredients, urgent := ingredientNames(items, today)

	var out []domain.RecipeSummary
	if s.remote != nil && s.remote.Configured() {
		matches, err := s.remote.FindByIngredients(ctx, ingredients[:min(len(ingredients), remoteIngredients)], in.Limit)
		if err != nil {
			return nil, fmt.Errorf("recipe.Recommend: %w", domain.NewUpstreamError("spoonacular", err))
		}
		out = scoreRemote(matches, urgent)
	} else {
		out = scoreCatalog(ingredients, urgent, in.MaxTime)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > in.Limit {
		out = out[:in.Limit]
	}

	s.log.DebugContext(ctx, "recipes recommended",
		slog.String("user_id", user.ID.String()),
		slog.Int("ingredients", len(ingredients)),
		slog.Int("results", len(out)))
	return out, nil
}

// ingredientNames orders items soonest-expiring first and returns their
// lower-cased names plus those expiring within two days.
func ingredientNames(items []domain.Item, today time.Time) (all, urgent []string) {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)
	left := func(it *domain.Item) int {
		if d := it.DaysUntilExpiry(today); d != nil {
			return *d
		}
		return 999
	}
	sort.SliceStable(sorted, func(i, j int) bool { return left(&sorted[i]) < left(&sorted[j]) })

	for i := range sorted {
		name := strings.ToLower(strings.TrimSpace(sorted[i].Name))
		all = append(all, name)
		if left(&sorted[i]) <= urgentDays {
			urgent = append(urgent, name)
		}
	}
	return all, urgent
}

// scoreRemote ranks provider matches: +10 per expiring ingredient used, +3 per
// used ingredient, -2 per missing one and +5 when nothing is missing.
func scoreRemote(matches []provider.RecipeMatch, expiring []string) []domain.RecipeSummary {
	out := make([]domain.RecipeSummary, 0, len(matches))
	for _, m := range matches {
		usesExpiring := []string{}
		for _, exp := range expiring {
			for _, used := range m.UsedIngredients {
				if strings.Contains(used, exp) {
					usesExpiring = append(usesExpiring, exp)
					break
				}
			}
		}

		score := 10*len(usesExpiring) + 3*len(m.UsedIngredients) - 2*m.MissedIngredientCount
		if m.MissedIngredientCount == 0 {
			score += 5
		}

		out = append(out, domain.RecipeSummary{
			ID:                      m.ID,
			Title:                   m.Title,
			Image:                   m.Image,
			ReadyInMinutes:          remoteReadyIn,
			Servings:                remoteServings,
			Score:                   float64(max(score, 0)),
			UsesExpiring:            usesExpiring,
			MissingIngredientsCount: m.MissedIngredientCount,
			UsedIngredientsCount:    m.UsedIngredientCount,
		})
	}
	return out
}

// Detail returns a recipe with have_it flags set from the scope's active items.
func (s *Service) Detail(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("recipe.Detail: %w", err)
	}

	d, err := s.lookup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("recipe.Detail: %w", err)
	}

	items, err := s.items.ListActive(ctx, domain.Scope{UserID: user.ID, FamilyID: user.FamilyID}, 0)
	if err != nil {
		return nil, fmt.Errorf("recipe.Detail: %w", err)
	}
	markOwned(d, items)
	return d, nil
}

func (s *Service) lookup(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	if s.remote == nil || !s.remote.Configured() {
		r, ok := catalogByID(id)
		if !ok {
			return nil, fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
		}
		return catalogDetail(r), nil
	}

	key := "recipe:" + strconv.Itoa(id)
	if s.cache != nil {
		var cached domain.RecipeDetail
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.WarnContext(ctx, "recipe cache read failed", slog.String("error", err.Error()))
		}
		if hit {
			return &cached, nil
		}
	}

	d, err := s.remote.Information(ctx, id)
	if err != nil {
		return nil, domain.NewUpstreamError("spoonacular", err)
	}
	if d == nil {
		return nil, fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, d, detailCacheTTL); err != nil {
			s.log.WarnContext(ctx, "recipe cache write failed", slog.String("error", err.Error()))
		}
	}
	return d, nil
}

// markOwned flags ingredients whose name overlaps an item name.
func markOwned(d *domain.RecipeDetail, items []domain.Item) {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, strings.ToLower(it.Name))
	}
	for i := range d.Ingredients {
		ing := strings.ToLower(d.Ingredients[i].Name)
		d.Ingredients[i].HaveIt = false
		for _, n := range names {
			if overlaps(n, ing) {
				d.Ingredients[i].HaveIt = true
				break
			}
		}
	}
}

// Cooked records that the authenticated user cooked a recipe.
func (s *Service) Cooked(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.analytics.RecordRecipeCooked(ctx); err != nil {
		return fmt.Errorf("recipe.Cooked: %w", err)
	}
	s.log.InfoContext(ctx, "recipe cooked", slog.Int("recipe_id", id))
	return nil
}

func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

