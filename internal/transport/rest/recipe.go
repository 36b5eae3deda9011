package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/recipe"
)

type recipeService interface {
	Recommend(ctx context.Context, in recipe.RecommendInput) ([]domain.RecipeSummary, error)
	Detail(ctx context.Context, id int) (*domain.RecipeDetail, error)
	Cooked(ctx context.Context, id int) error
}

// RecipeHandler serves /api/recipes endpoints.
type RecipeHandler struct {
	svc recipeService
	log *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(svc recipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, log: logger.With("handler", "recipe")}
}

type recipesResponse struct {
	Recipes []recipeSummaryResponse `json:"recipes"`
	Count   int                     `json:"count"`
}

// Recommend handles GET /api/recipes?use_expiring=true&max_time=30&limit=15.
func (h *RecipeHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	useExpiring, err := queryBool(r, "use_expiring", true)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := recipe.RecommendInput{UseExpiring: useExpiring, Limit: limit}
	if r.URL.Query().Has("max_time") {
		maxTime, err := queryInt(r, "max_time", 0)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		in.MaxTime = &maxTime
	}

	recipes, err := h.svc.Recommend(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipesResponse{Recipes: toRecipeSummaries(recipes), Count: len(recipes)})
}

// Detail handles GET /api/recipes/{id}.
func (h *RecipeHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDetail(d))
}

// Cooked handles POST /api/recipes/{id}/cooked.
func (h *RecipeHandler) Cooked(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Cooked(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "recipe marked as cooked"})
}
