package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/inventory"
)

// dateLayout is the wire form of calendar dates.
const dateLayout = "2006-01-02"

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtDate(*t)
	return &s
}

// parseDate parses an optional "YYYY-MM-DD" field.
func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Timezone    string     `json:"timezone"`
	FamilyID    *uuid.UUID `json:"family_id"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toUser(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Timezone:    u.Timezone,
		FamilyID:    u.FamilyID,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Inventory
// ---------------------------------------------------------------------------

type itemResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	FamilyID        *uuid.UUID `json:"family_id"`
	Name            string     `json:"name"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	Category        string     `json:"category"`
	Storage         string     `json:"storage"`
	PurchaseDate    string     `json:"purchase_date"`
	ExpirationDate  *string    `json:"expiration_date"`
	Status          string     `json:"status"`
	Freshness       string     `json:"freshness"`
	DaysUntilExpiry *int       `json:"days_until_expiry"`
	Notes           *string    `json:"notes"`
	PhotoURL        *string    `json:"photo_url"`
	Barcode         *string    `json:"barcode"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toItem(v inventory.ItemView) itemResponse {
	return itemResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		FamilyID:        v.FamilyID,
		Name:            v.Name,
		Quantity:        v.Quantity,
		Unit:            v.Unit,
		Category:        string(v.Category),
		Storage:         string(v.Storage),
		PurchaseDate:    fmtDate(v.PurchaseDate),
		ExpirationDate:  fmtDatePtr(v.ExpirationDate),
		Status:          string(v.Status),
		Freshness:       string(v.Freshness),
		DaysUntilExpiry: v.DaysUntilExpiry,
		Notes:           v.Notes,
		PhotoURL:        v.PhotoURL,
		Barcode:         v.Barcode,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func toItems(vs []inventory.ItemView) []itemResponse {
	out := make([]itemResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toItem(v))
	}
	return out
}

type statsResponse struct {
	TotalItems     int            `json:"total_items"`
	ByCategory     map[string]int `json:"by_category"`
	ByStorage      map[string]int `json:"by_storage"`
	ByFreshness    map[string]int `json:"by_freshness"`
	EstimatedValue float64        `json:"estimated_value"`
	ExpiringCount  int            `json:"expiring_count"`
	ExpiredCount   int            `json:"expired_count"`
}

func toStats(s *domain.InventoryStats) statsResponse {
	out := statsResponse{
		TotalItems:     s.TotalItems,
		ByCategory:     make(map[string]int, len(s.ByCategory)),
		ByStorage:      make(map[string]int, len(s.ByStorage)),
		ByFreshness:    make(map[string]int, len(s.ByFreshness)),
		EstimatedValue: s.EstimatedValue,
		ExpiringCount:  s.ExpiringCount,
		ExpiredCount:   s.ExpiredCount,
	}
	for k, v := range s.ByCategory {
		out.ByCategory[string(k)] = v
	}
	for k, v := range s.ByStorage {
		out.ByStorage[string(k)] = v
	}
	for k, v := range s.ByFreshness {
		out.ByFreshness[string(k)] = v
	}
	return out
}

type productResponse struct {
	Found               bool    `json:"found"`
	AllowManualEntry    bool    `json:"allow_manual_entry"`
	Source              string  `json:"source,omitempty"`
	UPC                 string  `json:"upc"`
	Name                string  `json:"name,omitempty"`
	Brand               string  `json:"brand,omitempty"`
	Category            string  `json:"category,omitempty"`
	SuggestedExpiryDays int     `json:"suggested_expiry_days,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
	NutritionGrade      *string `json:"nutrition_grade,omitempty"`
}

func toProduct(p *domain.Product) productResponse {
	return productResponse{
		Found:               p.Found,
		AllowManualEntry:    !p.Found,
		Source:              string(p.Source),
		UPC:                 p.UPC,
		Name:                p.Name,
		Brand:               p.Brand,
		Category:            string(p.Category),
		SuggestedExpiryDays: p.SuggestedExpiryDays,
		ImageURL:            p.ImageURL,
		NutritionGrade:      p.NutritionGrade,
	}
}

type receiptLineResponse struct {
	Name                string  `json:"name"`
	Quantity            float64 `json:"quantity"`
	Unit                string  `json:"unit"`
	SuggestedCategory   string  `json:"suggested_category"`
	SuggestedExpiryDays int     `json:"suggested_expiry_days"`
	Confidence          float64 `json:"confidence"`
}

type receiptResponse struct {
	Items    []receiptLineResponse `json:"items"`
	RawText  string                `json:"raw_text"`
	Warnings []string              `json:"warnings"`
}

func toReceipt(p *domain.ReceiptParse) receiptResponse {
	out := receiptResponse{
		Items:    make([]receiptLineResponse, 0, len(p.Items)),
		RawText:  p.RawText,
		Warnings: p.Warnings,
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}
	for _, l := range p.Items {
		out.Items = append(out.Items, receiptLineResponse{
			Name:                l.Name,
			Quantity:            l.Quantity,
			Unit:                l.Unit,
			SuggestedCategory:   string(l.SuggestedCategory),
			SuggestedExpiryDays: l.SuggestedExpiryDays,
			Confidence:          l.Confidence,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type notificationResponse struct {
	ID           uuid.UUID      `json:"id"`
	Type         string         `json:"type"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Data         map[string]any `json:"data"`
	Read         bool           `json:"read"`
	VoiceURL     *string        `json:"voice_url"`
	SnoozedUntil *time.Time     `json:"snoozed_until"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toNotifications(ns []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, notificationResponse{
			ID:           n.ID,
			Type:         string(n.Type),
			Title:        n.Title,
			Body:         n.Body,
			Data:         n.Data,
			Read:         n.Read,
			VoiceURL:     n.VoiceURL,
			SnoozedUntil: n.SnoozedUntil,
			CreatedAt:    n.CreatedAt,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Shopping
// ---------------------------------------------------------------------------

type shoppingItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ListID        uuid.UUID `json:"list_id"`
	Name          string    `json:"name"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	Category      *string   `json:"category"`
	Checked       bool      `json:"checked"`
	AddedBy       uuid.UUID `json:"added_by"`
	AddedByName   *string   `json:"added_by_name"`
	Notes         *string   `json:"notes"`
	AutoGenerated bool      `json:"auto_generated"`
	CreatedAt     time.Time `json:"created_at"`
}

type shoppingListResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	FamilyID     *uuid.UUID             `json:"family_id"`
	Items        []shoppingItemResponse `json:"items"`
	ItemCount    int                    `json:"item_count"`
	CheckedCount int                    `json:"checked_count"`
}

func toShoppingItem(it domain.ShoppingItem) shoppingItemResponse {
	var cat *string
	if it.Category != nil {
		c := string(*it.Category)
		cat = &c
	}
	return shoppingItemResponse{
		ID:            it.ID,
		ListID:        it.ListID,
		Name:          it.Name,
		Quantity:      it.Quantity,
		Unit:          it.Unit,
		Category:      cat,
		Checked:       it.Checked,
		AddedBy:       it.AddedBy,
		AddedByName:   it.AddedByName,
		Notes:         it.Notes,
		AutoGenerated: it.AutoGenerated,
		CreatedAt:     it.CreatedAt,
	}
}

func toShoppingItems(items []domain.ShoppingItem) []shoppingItemResponse {
	out := make([]shoppingItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toShoppingItem(it))
	}
	return out
}

func toShoppingList(l *domain.ShoppingList) shoppingListResponse {
	return shoppingListResponse{
		ID:           l.ID,
		Name:         l.Name,
		FamilyID:     l.FamilyID,
		Items:        toShoppingItems(l.Items),
		ItemCount:    len(l.Items),
		CheckedCount: l.CheckedCount(),
	}
}

// ---------------------------------------------------------------------------
// Family
// ---------------------------------------------------------------------------

type familyResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	AdminID     uuid.UUID        `json:"admin_id"`
	InviteCode  string           `json:"invite_code"`
	MemberCount int              `json:"member_count"`
	CreatedAt   time.Time        `json:"created_at"`
	Members     []memberResponse `json:"members,omitempty"`
}

type memberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

func toFamily(f *domain.Family, members []domain.FamilyMember) familyResponse {
	out := familyResponse{
		ID:          f.ID,
		Name:        f.Name,
		AdminID:     f.AdminID,
		InviteCode:  f.InviteCode,
		MemberCount: f.MemberCount,
		CreatedAt:   f.CreatedAt,
	}
	if members != nil {
		out.Members = toMembers(members)
	}
	return out
}

func toMember(m domain.FamilyMember) memberResponse {
	return memberResponse{
		UserID:   m.UserID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func toMembers(ms []domain.FamilyMember) []memberResponse {
	out := make([]memberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMember(m))
	}
	return out
}

// ---------------------------------------------------------------------------
// Recipes
// ---------------------------------------------------------------------------

type recipeSummaryResponse struct {
	ID                      int      `json:"id"`
	Title                   string   `json:"title"`
	Image                   *string  `json:"image"`
	ReadyInMinutes          int      `json:"ready_in_minutes"`
	Servings                int      `json:"servings"`
	Score                   float64  `json:"score"`
	UsesExpiring            []string `json:"uses_expiring"`
	MissingIngredientsCount int      `json:"missing_ingredients_count"`
	UsedIngredientsCount    int      `json:"used_ingredients_count"`
}

func toRecipeSummaries(rs []domain.RecipeSummary) []recipeSummaryResponse {
	out := make([]recipeSummaryResponse, 0, len(rs))
	for _, r := range rs {
		uses := r.UsesExpiring
		if uses == nil {
			uses = []string{}
		}
		out = append(out, recipeSummaryResponse{
			ID:                      r.ID,
			Title:                   r.Title,
			Image:                   r.Image,
			ReadyInMinutes:          r.ReadyInMinutes,
			Servings:                r.Servings,
			Score:                   r.Score,
			UsesExpiring:            uses,
			MissingIngredientsCount: r.MissingIngredientsCount,
			UsedIngredientsCount:    r.UsedIngredientsCount,
		})
	}
	return out
}

type ingredientResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	HaveIt bool    `json:"have_it"`
}

type nutritionResponse struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
	Carbs    string `json:"carbs"`
}

type recipeDetailResponse struct {
	ID             int                  `json:"id"`
	Title          string               `json:"title"`
	Image          *string              `json:"image"`
	SourceURL      *string              `json:"source_url"`
	ReadyInMinutes int                  `json:"ready_in_minutes"`
	Servings       int                  `json:"servings"`
	Summary        *string              `json:"summary"`
	Instructions   *string              `json:"instructions"`
	Ingredients    []ingredientResponse `json:"ingredients"`
	Nutrition      nutritionResponse    `json:"nutrition"`
}

func toRecipeDetail(d *domain.RecipeDetail) recipeDetailResponse {
	out := recipeDetailResponse{
		ID:             d.ID,
		Title:          d.Title,
		Image:          d.Image,
		SourceURL:      d.SourceURL,
		ReadyInMinutes: d.ReadyInMinutes,
		Servings:       d.Servings,
		Summary:        d.Summary,
		Instructions:   d.Instructions,
		Ingredients:    make([]ingredientResponse, 0, len(d.Ingredients)),
		Nutrition:      nutritionResponse{Calories: d.Calories, Protein: d.Protein, Fat: d.Fat, Carbs: d.Carbs},
	}
	for _, in := range d.Ingredients {
		out.Ingredients = append(out.Ingredients, ingredientResponse{
			Name: in.Name, Amount: in.Amount, Unit: in.Unit, HaveIt: in.HaveIt,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Analytics
// ---------------------------------------------------------------------------

type summaryResponse struct {
	ItemsSaved       int     `json:"items_saved"`
	MoneySaved       float64 `json:"money_saved"`
	CO2PreventedKg   float64 `json:"co2_prevented_kg"`
	WaterSavedLiters float64 `json:"water_saved_liters"`
	CurrentStreak    int     `json:"current_streak"`
	BestStreak       int     `json:"best_streak"`
	WasteCount       int     `json:"waste_count"`
	WasteCost        float64 `json:"waste_cost"`
	WasteCO2Kg       float64 `json:"waste_co2_kg"`
	RecipesTried     int     `json:"recipes_tried"`
}

func toSummary(s domain.AnalyticsSummary) summaryResponse {
	return summaryResponse{
		ItemsSaved:       s.ItemsSaved,
		MoneySaved:       s.MoneySaved,
		CO2PreventedKg:   s.CO2PreventedKg,
		WaterSavedLiters: s.WaterSavedLiters,
		CurrentStreak:    s.CurrentStreak,
		BestStreak:       s.BestStreak,
		WasteCount:       s.WasteCount,
		WasteCost:        s.WasteCost,
		WasteCO2Kg:       s.WasteCO2Kg,
		RecipesTried:     s.RecipesTried,
	}
}

type dailyResponse struct {
	Date             string  `json:"date"`
	ItemsSaved       int     `json:"items_saved"`
	MoneySaved       float64 `json:"money_saved"`
	CO2PreventedKg   float64 `json:"co2_prevented_kg"`
	WaterSavedLiters float64 `json:"water_saved_liters"`
	WasteCount       int     `json:"waste_count"`
	WasteCost        float64 `json:"waste_cost"`
	RecipesTried     int     `json:"recipes_tried"`
}

type periodResponse struct {
	Period            string             `json:"period"`
	StartDate         string             `json:"start_date"`
	EndDate           string             `json:"end_date"`
	Summary           summaryResponse    `json:"summary"`
	Daily             []dailyResponse    `json:"daily_data"`
	WasteByCategory   map[string]float64 `json:"waste_by_category"`
	SavingsByCategory map[string]float64 `json:"savings_by_category"`
}

func toPeriod(p *domain.PeriodReport) periodResponse {
	out := periodResponse{
		Period:            string(p.Period),
		StartDate:         fmtDate(p.StartDate),
		EndDate:           fmtDate(p.EndDate),
		Summary:           toSummary(p.Summary),
		Daily:             make([]dailyResponse, 0, len(p.Daily)),
		WasteByCategory:   breakdown(p.WasteByCategory),
		SavingsByCategory: breakdown(p.SavingsByCategory),
	}
	for _, d := range p.Daily {
		out.Daily = append(out.Daily, dailyResponse{
			Date:             fmtDate(d.Date),
			ItemsSaved:       d.ItemsSaved,
			MoneySaved:       d.MoneySaved,
			CO2PreventedKg:   d.CO2PreventedKg,
			WaterSavedLiters: d.WaterSavedLiters,
			WasteCount:       d.WasteCount,
			WasteCost:        d.WasteCost,
			RecipesTried:     d.RecipesTried,
		})
	}
	return out
}

func breakdown(b domain.CategoryBreakdown) map[string]float64 {
	out := make(map[string]float64, len(b))
	for k, v := range b {
		out[string(k)] = v
	}
	return out
}

type insightResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ActionText  *string   `json:"action_text"`
	ActionURL   *string   `json:"action_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func toInsights(is []domain.Insight) []insightResponse {
	out := make([]insightResponse, 0, len(is))
	for _, i := range is {
		out = append(out, insightResponse{
			ID:          i.ID,
			Type:        string(i.Type),
			Title:       i.Title,
			Description: i.Description,
			ActionText:  i.ActionText,
			ActionURL:   i.ActionURL,
			CreatedAt:   i.CreatedAt,
		})
	}
	return out
}

type achievementResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Target      int        `json:"target"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
	Progress    float64    `json:"progress"`
	Current     int        `json:"current"`
}

func toAchievementStatuses(as []domain.AchievementStatus) []achievementResponse {
	out := make([]achievementResponse, 0, len(as))
	for _, a := range as {
		out = append(out, achievementResponse{
			ID:          a.Achievement.ID,
			Name:        a.Achievement.Name,
			Description: a.Achievement.Description,
			Icon:        a.Achievement.Icon,
			Target:      a.Achievement.Target,
			Unlocked:    a.Unlocked,
			UnlockedAt:  a.UnlockedAt,
			Progress:    a.Progress,
			Current:     a.Current,
		})
	}
	return out
}

func toUnlocked(as []domain.Achievement) []achievementResponse {
	out := make([]achievementResponse, 0, len(as))
	for _, a := range as {
		out = append(out, achievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Target:      a.Target,
			Unlocked:    true,
			Progress:    1,
			Current:     a.Target,
		})
	}
	return out
}
