package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/shopping"
)

type shoppingService interface {
	Get(ctx context.Context) (*domain.ShoppingList, error)
	Add(ctx context.Context, in shopping.AddInput) (*domain.ShoppingItem, error)
	Update(ctx context.Context, id uuid.UUID, in shopping.UpdateInput) (*domain.ShoppingItem, error)
	Toggle(ctx context.Context, id uuid.UUID) (*domain.ShoppingItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ClearChecked(ctx context.Context) (int64, error)
	GenerateFromInventory(ctx context.Context) ([]domain.ShoppingItem, error)
	ImportToInventory(ctx context.Context, in shopping.ImportInput) (*shopping.ImportResult, error)
}

// ShoppingHandler serves /api/shopping-list endpoints.
type ShoppingHandler struct {
	svc shoppingService
	log *slog.Logger
}

// NewShoppingHandler creates a ShoppingHandler.
func NewShoppingHandler(svc shoppingService, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{svc: svc, log: logger.With("handler", "shopping")}
}

type addShoppingItemRequest struct {
	Name     string           `json:"name"`
	Quantity float64          `json:"quantity"`
	Unit     string           `json:"unit"`
	Category *domain.Category `json:"category"`
	Notes    *string          `json:"notes"`
}

type updateShoppingItemRequest struct {
	Name     *string          `json:"name"`
	Quantity *float64         `json:"quantity"`
	Unit     *string          `json:"unit"`
	Category *domain.Category `json:"category"`
	Checked  *bool            `json:"checked"`
	Notes    *string          `json:"notes"`
}

type importRequest struct {
	ItemIDs      []uuid.UUID `json:"item_ids"`
	ClearChecked bool        `json:"clear_checked"`
}

type generatedResponse struct {
	Added []shoppingItemResponse `json:"added"`
	Count int                    `json:"count"`
}

type importResponse struct {
	Items   []itemResponse `json:"items"`
	Count   int            `json:"count"`
	Cleared int64          `json:"cleared"`
}

// Get handles GET /api/shopping-list.
func (h *ShoppingHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toShoppingList(l))
}

// Add handles POST /api/shopping-list/items.
func (h *ShoppingHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addShoppingItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	it, err := h.svc.Add(r.Context(), shopping.AddInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShoppingItem(*it))
}

// Update handles PUT /api/shopping-list/items/{id}.
func (h *ShoppingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateShoppingItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	it, err := h.svc.Update(r.Context(), id, shopping.UpdateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
		Checked:  req.Checked,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toShoppingItem(*it))
}

// Toggle handles POST /api/shopping-list/items/{id}/toggle.
func (h *ShoppingHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	it, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toShoppingItem(*it))
}

// Delete handles DELETE /api/shopping-list/items/{id}.
func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeNoContent(w)
}

// ClearChecked handles POST /api/shopping-list/clear-checked.
func (h *ShoppingHandler) ClearChecked(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ClearChecked(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// Generate handles POST /api/shopping-list/generate.
func (h *ShoppingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	added, err := h.svc.GenerateFromInventory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generatedResponse{Added: toShoppingItems(added), Count: len(added)})
}

// Import handles POST /api/shopping-list/import. An empty body imports every
// checked line.
func (h *ShoppingHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	res, err := h.svc.ImportToInventory(r.Context(), shopping.ImportInput{
		ItemIDs:      req.ItemIDs,
		ClearChecked: req.ClearChecked,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{
		Items:   toItems(res.Items),
		Count:   len(res.Items),
		Cleared: res.Cleared,
	})
}
