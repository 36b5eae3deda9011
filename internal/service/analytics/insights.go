package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	insightWasteThreshold = 5
	insightSavedThreshold = 10
	insightExpiringDays   = 3
	insightTrendDays      = 30
	insightTrendMinEvents = 2
)

// Insights derives personalised tips from the user's totals and current inventory.
// There is always at least one insight.
func (s *Service) Insights(ctx context.Context) ([]domain.Insight, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Insights: %w", err)
	}

	days, err := s.analytics.ListDaily(ctx, user.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics.Insights: %w", err)
	}
	summary := domain.Summarize(days)

	now := s.now()
	var out []domain.Insight
	add := func(typ domain.InsightType, title, desc, actionText, actionURL string) {
		in := domain.Insight{ID: uuid.New(), Type: typ, Title: title, Description: desc, CreatedAt: now.UTC()}
		if actionText != "" {
			in.ActionText = &actionText
			in.ActionURL = &actionURL
		}
		out = append(out, in)
	}

	if summary.WasteCount > insightWasteThreshold {
		add(domain.InsightTip, "Reduce Food Waste",
			fmt.Sprintf("You've wasted %d items. Try checking expiration dates more frequently!", summary.WasteCount),
			"View expiring items", "/inventory/expiring")
	}

	if summary.ItemsSaved >= insightSavedThreshold {
		add(domain.InsightAchievement, "Great Progress!",
			fmt.Sprintf("You've saved %d items from waste. Keep it up!", summary.ItemsSaved), "", "")
	}

	scope := domain.Scope{UserID: user.ID, FamilyID: user.FamilyID}
	expiring, err := s.items.ListExpiring(ctx, scope, domain.LocalDate(now, user.Location()), insightExpiringDays)
	if err != nil {
		return nil, fmt.Errorf("analytics.Insights expiring: %w", err)
	}
	if len(expiring) > 0 {
		names := make([]string, 0, 3)
		for i := 0; i < len(expiring) && i < 3; i++ {
			names = append(names, expiring[i].Name)
		}
		add(domain.InsightWarning, fmt.Sprintf("%d items expiring soon", len(expiring)),
			"Use "+strings.Join(names, ", ")+" in the next few days before they go bad.",
			"Find recipes", "/recipes?use_expiring=true")
	}

	waste, err := s.logs.WasteByCategory(ctx, user.ID, now.AddDate(0, 0, -insightTrendDays))
	if err != nil {
		return nil, fmt.Errorf("analytics.Insights trend: %w", err)
	}
	if cat, count, ok := topCategory(waste); ok && count >= insightTrendMinEvents {
		add(domain.InsightTrend, "Most wasted: "+cat.String(),
			fmt.Sprintf("You threw away %d %s items in the last 30 days. Try buying smaller amounts.", int(count), cat),
			"View "+cat.String(), "/inventory?category="+cat.String())
	}

	if len(out) == 0 {
		add(domain.InsightTip, "Track Your Groceries",
			"Add items to your inventory when you shop to get personalized recommendations.",
			"Add items", "/inventory/add")
	}
	return out, nil
}

// topCategory returns the category with the highest count, ties broken by name.
func topCategory(b domain.CategoryBreakdown) (domain.Category, float64, bool) {
	if len(b) == 0 {
		return "", 0, false
	}
	cats := make([]domain.Category, 0, len(b))
	for c := range b {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if b[cats[i]] != b[cats[j]] {
			return b[cats[i]] > b[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats[0], b[cats[0]], true
}
