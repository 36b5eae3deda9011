package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/inventory"
)

type inventoryService interface {
	List(ctx context.Context, in inventory.ListInput) (*inventory.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*inventory.ItemView, error)
	Create(ctx context.Context, in inventory.CreateInput) (*inventory.ItemView, error)
	Update(ctx context.Context, id uuid.UUID, in inventory.UpdateInput) (*inventory.ItemView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Consume(ctx context.Context, id uuid.UUID, in inventory.ConsumeInput) (*inventory.ItemView, error)
	Waste(ctx context.Context, id uuid.UUID, in inventory.WasteInput) (*inventory.ItemView, error)
	Expiring(ctx context.Context, days int) ([]inventory.ItemView, error)
	Expired(ctx context.Context) ([]inventory.ItemView, error)
	Stats(ctx context.Context) (*domain.InventoryStats, error)
	LookupBarcode(ctx context.Context, upc string) (*domain.Product, error)
	ParseReceipt(ctx context.Context, image []byte) (*domain.ReceiptParse, error)
	ConfirmReceipt(ctx context.Context, in inventory.ConfirmReceiptInput) ([]inventory.ItemView, error)
}

// InventoryHandler serves /api/inventory endpoints.
type InventoryHandler struct {
	svc       inventoryService
	log       *slog.Logger
	maxUpload int64
}

// NewInventoryHandler creates an InventoryHandler. maxUploadMB bounds receipt images.
func NewInventoryHandler(svc inventoryService, maxUploadMB int64, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		svc:       svc,
		log:       logger.With("handler", "inventory"),
		maxUpload: maxUploadMB << 20,
	}
}

type itemRequest struct {
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	Storage        string  `json:"storage"`
	PurchaseDate   *string `json:"purchase_date"`
	ExpirationDate *string `json:"expiration_date"`
	Notes          *string `json:"notes"`
	PhotoURL       *string `json:"photo_url"`
	Barcode        *string `json:"barcode"`
}

func (req itemRequest) toInput(prefix string) (inventory.CreateInput, error) {
	purchase, err := parseDate(prefix+"purchase_date", req.PurchaseDate)
	if err != nil {
		return inventory.CreateInput{}, err
	}
	expires, err := parseDate(prefix+"expiration_date", req.ExpirationDate)
	if err != nil {
		return inventory.CreateInput{}, err
	}
	return inventory.CreateInput{
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Category:       domain.Category(req.Category),
		Storage:        domain.Storage(req.Storage),
		PurchaseDate:   purchase,
		ExpirationDate: expires,
		Notes:          req.Notes,
		PhotoURL:       req.PhotoURL,
		Barcode:        req.Barcode,
	}, nil
}

type updateItemRequest struct {
	Name           *string  `json:"name"`
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
	Category       *string  `json:"category"`
	Storage        *string  `json:"storage"`
	ExpirationDate *string  `json:"expiration_date"`
	Notes          *string  `json:"notes"`
	PhotoURL       *string  `json:"photo_url"`
}

type consumeRequest struct {
	Quantity *float64 `json:"quantity_consumed"`
	Notes    *string  `json:"notes"`
}

type wasteRequest struct {
	Reason       string  `json:"reason"`
	FeedbackText *string `json:"feedback_text"`
	PhotoURL     *string `json:"photo_url"`
}

type confirmReceiptRequest struct {
	Items []itemRequest `json:"items"`
}

type listResponse struct {
	Items         []itemResponse `json:"items"`
	Total         int            `json:"total"`
	Offset        int            `json:"offset"`
	ExpiringCount int            `json:"expiring_count"`
	ExpiredCount  int            `json:"expired_count"`
}

type itemsResponse struct {
	Items []itemResponse `json:"items"`
	Count int            `json:"count"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := inventory.ListInput{Search: queryString(r, "search"), Limit: limit, Offset: offset}
	if v := queryString(r, "status"); v != nil {
		s := domain.ItemStatus(*v)
		in.Status = &s
	}
	if v := queryString(r, "category"); v != nil {
		c := domain.Category(*v)
		in.Category = &c
	}
	if v := queryString(r, "storage"); v != nil {
		s := domain.Storage(*v)
		in.Storage = &s
	}

	res, err := h.svc.List(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:         toItems(res.Items),
		Total:         res.Total,
		Offset:        offset,
		ExpiringCount: res.ExpiringCount,
		ExpiredCount:  res.ExpiredCount,
	})
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	in, err := req.toInput("")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItem(*item))
}

// Get handles GET /api/inventory/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItem(*item))
}

// Update handles PUT /api/inventory/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	expires, err := parseDate("expiration_date", req.ExpirationDate)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := inventory.UpdateInput{
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpirationDate: expires,
		Notes:          req.Notes,
		PhotoURL:       req.PhotoURL,
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		in.Category = &c
	}
	if req.Storage != nil {
		s := domain.Storage(*req.Storage)
		in.Storage = &s
	}

	item, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItem(*item))
}

// Delete handles DELETE /api/inventory/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Consume handles POST /api/inventory/{id}/consume. An empty body consumes everything.
func (h *InventoryHandler) Consume(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req consumeRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	item, err := h.svc.Consume(r.Context(), id, inventory.ConsumeInput{Quantity: req.Quantity, Notes: req.Notes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItem(*item))
}

// Waste handles POST /api/inventory/{id}/waste.
func (h *InventoryHandler) Waste(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req wasteRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	item, err := h.svc.Waste(r.Context(), id, inventory.WasteInput{
		Reason:       domain.WasteReason(req.Reason),
		FeedbackText: req.FeedbackText,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItem(*item))
}

// Expiring handles GET /api/inventory/expiring?days=N.
func (h *InventoryHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.Expiring(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: toItems(items), Count: len(items)})
}

// Expired handles GET /api/inventory/expired.
func (h *InventoryHandler) Expired(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Expired(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: toItems(items), Count: len(items)})
}

// Stats handles GET /api/inventory/stats.
func (h *InventoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStats(stats))
}

// Barcode handles GET /api/inventory/barcode/{upc}. Unknown products answer
// 200 with found false so the client can fall back to manual entry.
func (h *InventoryHandler) Barcode(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.LookupBarcode(r.Context(), r.PathValue("upc"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}

// Receipt handles POST /api/inventory/receipt (multipart field "file").
func (h *InventoryHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", fmt.Sprintf("invalid upload: %v", err)))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "could not read upload"))
		return
	}

	parsed, err := h.svc.ParseReceipt(r.Context(), image)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReceipt(parsed))
}

// ConfirmReceipt handles POST /api/inventory/receipt/confirm.
func (h *InventoryHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	var req confirmReceiptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := inventory.ConfirmReceiptInput{Items: make([]inventory.CreateInput, 0, len(req.Items))}
	for i, it := range req.Items {
		ci, err := it.toInput(fmt.Sprintf("items[%d].", i))
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		in.Items = append(in.Items, ci)
	}

	items, err := h.svc.ConfirmReceipt(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, itemsResponse{Items: toItems(items), Count: len(items)})
}
