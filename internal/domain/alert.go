package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const alertNamesShown = 3

// NewExpiryAlert builds the morning alert for items that are about to expire.
// Returns false when there is nothing to report.
func NewExpiryAlert(userID uuid.UUID, items []Item) (Notification, bool) {
	if len(items) == 0 {
		return Notification{}, false
	}

	n := Notification{
		UserID: userID,
		Type:   NotificationTypeExpiryAlert,
		Data:   map[string]any{"item_ids": itemIDs(items)},
	}

	if len(items) == 1 {
		n.Title = items[0].Name + " expires today!"
		n.Body = "Your " + items[0].Name + " needs attention. Use it today or find a recipe!"
		return n, true
	}

	text := strings.Join(firstNames(items, alertNamesShown), ", ")
	if len(items) > alertNamesShown {
		text += fmt.Sprintf(" and %d more", len(items)-alertNamesShown)
	}
	n.Title = fmt.Sprintf("%d items need attention", len(items))
	n.Body = "These items are expiring soon: " + text
	return n, true
}

// NewEveningReminder builds the "last chance" reminder for items expiring today.
func NewEveningReminder(userID uuid.UUID, items []Item) (Notification, bool) {
	if len(items) == 0 {
		return Notification{}, false
	}
	return Notification{
		UserID: userID,
		Type:   NotificationTypeReminder,
		Title:  "Last chance!",
		Body:   fmt.Sprintf("%d item(s) expire tonight. Use them now!", len(items)),
		Data:   map[string]any{"item_ids": itemIDs(items)},
	}, true
}

// NewAchievementNotification announces a newly unlocked achievement.
func NewAchievementNotification(userID uuid.UUID, a Achievement) Notification {
	return Notification{
		UserID: userID,
		Type:   NotificationTypeAchievement,
		Title:  "Achievement Unlocked!",
		Body:   fmt.Sprintf("You earned: %s - %s", a.Name, a.Description),
		Data:   map[string]any{"achievement_id": a.ID},
	}
}

// NewMemberJoinedNotification tells a family admin that someone joined.
func NewMemberJoinedNotification(adminID uuid.UUID, family Family, memberName string) Notification {
	return Notification{
		UserID: adminID,
		Type:   NotificationTypeFamily,
		Title:  "New family member",
		Body:   fmt.Sprintf("%s joined %s", memberName, family.Name),
		Data:   map[string]any{"family_id": family.ID.String()},
	}
}

// ExpiryVoiceText is the spoken version of an expiry alert.
func ExpiryVoiceText(items []Item, today time.Time) string {
	if len(items) == 0 {
		return ""
	}

	if len(items) == 1 {
		it := items[0]
		days := 0
		if d := it.DaysUntilExpiry(today); d != nil {
			days = *d
		}
		switch days {
		case 0:
			return "Attention! Your " + it.Name + " expires today. Consider using it soon."
		case 1:
			return "Heads up! Your " + it.Name + " expires tomorrow."
		default:
			return fmt.Sprintf("Your %s will expire in %d days.", it.Name, days)
		}
	}

	var todays, soon []Item
	for _, it := range items {
		d := it.DaysUntilExpiry(today)
		switch {
		case d == nil:
		case *d <= 0:
			todays = append(todays, it)
		case *d <= 3:
			soon = append(soon, it)
		}
	}

	var parts []string
	if len(todays) > 0 {
		parts = append(parts, strings.Join(firstNames(todays, alertNamesShown), ", ")+" expire today")
	}
	if len(soon) > 0 {
		parts = append(parts, strings.Join(firstNames(soon, alertNamesShown), ", ")+" expire soon")
	}
	return "Food alert! " + strings.Join(parts, " and ") + ". Check your FreshKeep app for recipes."
}

func firstNames(items []Item, n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < len(items) && i < n; i++ {
		names = append(names, items[i].Name)
	}
	return names
}

func itemIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID.String()
	}
	return ids
}
