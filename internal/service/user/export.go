package user

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

const dateLayout = "2006-01-02"

// Export is an encoded data export ready to be sent as a file download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// exportDocument is the JSON export layout.
type exportDocument struct {
	ExportedAt      time.Time           `json:"exported_at"`
	User            exportUser          `json:"user"`
	Settings        *exportSettings     `json:"settings"`
	Items           []exportItem        `json:"items"`
	Analytics       []exportDaily       `json:"analytics"`
	WasteLogs       []exportWaste       `json:"waste_logs"`
	ConsumptionLogs []exportConsumption `json:"consumption_logs"`
}

type exportUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

type exportSettings struct {
	Notifications domain.NotificationSettings `json:"notifications"`
	Food          domain.FoodPreferences      `json:"food"`
	Expiration    domain.ExpirationSettings   `json:"expiration"`
	Language      string                      `json:"language"`
}

type exportItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	Category       string    `json:"category"`
	Storage        string    `json:"storage"`
	PurchaseDate   string    `json:"purchase_date"`
	ExpirationDate *string   `json:"expiration_date"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes"`
	Barcode        *string   `json:"barcode"`
	CreatedAt      time.Time `json:"created_at"`
}

type exportDaily struct {
	Date             string  `json:"date"`
	ItemsSaved       int     `json:"items_saved"`
	MoneySaved       float64 `json:"money_saved"`
	CO2PreventedKg   float64 `json:"co2_prevented_kg"`
	WaterSavedLiters float64 `json:"water_saved_liters"`
	WasteCount       int     `json:"waste_count"`
	WasteCost        float64 `json:"waste_cost"`
	WasteCO2Kg       float64 `json:"waste_co2_kg"`
	RecipesTried     int     `json:"recipes_tried"`
}

type exportWaste struct {
	ItemID            uuid.UUID `json:"item_id"`
	Quantity          float64   `json:"quantity"`
	Reason            string    `json:"reason"`
	EstimatedValue    float64   `json:"estimated_value"`
	CO2ImpactKg       float64   `json:"co2_impact_kg"`
	WaterImpactLiters float64   `json:"water_impact_liters"`
	WastedAt          time.Time `json:"wasted_at"`
}

type exportConsumption struct {
	ItemID           uuid.UUID `json:"item_id"`
	QuantityConsumed float64   `json:"quantity_consumed"`
	ConsumedAt       time.Time `json:"consumed_at"`
}

// Export collects the authenticated user's data for download.
// CSV exports contain the item rows only.
func (s *Service) Export(ctx context.Context, input ExportInput) (*Export, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Export get user: %w", err)
	}

	items, err := s.items.ListByUser(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("user.Export list items: %w", err)
	}

	stamp := time.Now().UTC().Format(dateLayout)

	if input.Format == ExportCSV {
		data, err := encodeItemsCSV(items)
		if err != nil {
			return nil, fmt.Errorf("user.Export: %w", err)
		}
		s.log.InfoContext(ctx, "data exported", slog.String("user_id", userID.String()), slog.String("format", "csv"))
		return &Export{Filename: "freshkeep_items_" + stamp + ".csv", ContentType: "text/csv", Data: data}, nil
	}

	doc := exportDocument{
		ExportedAt: time.Now().UTC(),
		User: exportUser{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Timezone:  user.Timezone,
			CreatedAt: user.CreatedAt,
		},
		Items:           make([]exportItem, 0, len(items)),
		Analytics:       []exportDaily{},
		WasteLogs:       []exportWaste{},
		ConsumptionLogs: []exportConsumption{},
	}

	settings, err := s.settings(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("user.Export get settings: %w", err)
	}
	doc.Settings = &exportSettings{
		Notifications: settings.Notifications,
		Food:          settings.Food,
		Expiration:    settings.Expiration,
		Language:      settings.Language,
	}

	for _, it := range items {
		doc.Items = append(doc.Items, toExportItem(it))
	}

	daily, err := s.analytics.ListDaily(ctx, userID, input.From)
	if err != nil {
		return nil, fmt.Errorf("user.Export list analytics: %w", err)
	}
	for _, d := range daily {
		if input.To != nil && d.Date.After(*input.To) {
			continue
		}
		doc.Analytics = append(doc.Analytics, exportDaily{
			Date:             d.Date.Format(dateLayout),
			ItemsSaved:       d.ItemsSaved,
			MoneySaved:       d.MoneySaved,
			CO2PreventedKg:   d.CO2PreventedKg,
			WaterSavedLiters: d.WaterSavedLiters,
			WasteCount:       d.WasteCount,
			WasteCost:        d.WasteCost,
			WasteCO2Kg:       d.WasteCO2Kg,
			RecipesTried:     d.RecipesTried,
		})
	}

	wastes, err := s.logs.ListWaste(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("user.Export list waste: %w", err)
	}
	for _, w := range wastes {
		doc.WasteLogs = append(doc.WasteLogs, exportWaste{
			ItemID:            w.ItemID,
			Quantity:          w.Quantity,
			Reason:            w.Reason.String(),
			EstimatedValue:    w.EstimatedValue,
			CO2ImpactKg:       w.CO2ImpactKg,
			WaterImpactLiters: w.WaterImpactLiters,
			WastedAt:          w.WastedAt,
		})
	}

	consumed, err := s.logs.ListConsumption(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("user.Export list consumption: %w", err)
	}
	for _, c := range consumed {
		doc.ConsumptionLogs = append(doc.ConsumptionLogs, exportConsumption{
			ItemID:           c.ItemID,
			QuantityConsumed: c.QuantityConsumed,
			ConsumedAt:       c.ConsumedAt,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("user.Export encode: %w", err)
	}

	s.log.InfoContext(ctx, "data exported", slog.String("user_id", userID.String()), slog.String("format", "json"))
	return &Export{Filename: "freshkeep_data_" + stamp + ".json", ContentType: "application/json", Data: data}, nil
}

func toExportItem(it domain.Item) exportItem {
	out := exportItem{
		ID:           it.ID,
		Name:         it.Name,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		Category:     it.Category.String(),
		Storage:      it.Storage.String(),
		PurchaseDate: it.PurchaseDate.Format(dateLayout),
		Status:       it.Status.String(),
		Notes:        it.Notes,
		Barcode:      it.Barcode,
		CreatedAt:    it.CreatedAt,
	}
	if it.ExpirationDate != nil {
		exp := it.ExpirationDate.Format(dateLayout)
		out.ExpirationDate = &exp
	}
	return out
}

var csvHeader = []string{"id", "name", "quantity", "unit", "category", "storage", "purchase_date", "expiration_date", "status", "notes"}

func encodeItemsCSV(items []domain.Item) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range items {
		row := toExportItem(it)
		exp, notes := "", ""
		if row.ExpirationDate != nil {
			exp = *row.ExpirationDate
		}
		if row.Notes != nil {
			notes = *row.Notes
		}
		rec := []string{
			row.ID.String(), row.Name, strconv.FormatFloat(row.Quantity, 'f', -1, 64), row.Unit,
			row.Category, row.Storage, row.PurchaseDate, exp, row.Status, notes,
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
