package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	warnNoText  = "Could not extract text from image"
	warnNoItems = "No items could be identified"

	confidenceWithQuantity = 0.7
	confidenceNameOnly     = 0.5
	minReceiptLine         = 3
)

// receiptLine matches "[qty [x]] name [price]".
var receiptLine = regexp.MustCompile(`^(?:(\d+)\s*[xX]?\s*)?([A-Za-z][A-Za-z0-9\s\-'.]+?)(?:\s+[$€£]?\d+[.,]\d{2})?$`)

var whitespace = regexp.MustCompile(`\s+`)

// receiptNoise marks header, footer and payment lines.
var receiptNoise = []string{
	"total", "subtotal", "tax", "cash", "change", "visa", "mastercard",
	"thank", "receipt", "store", "date", "time", "welcome", "balance",
	"savings", "discount", "coupon", "rewards", "points", "card",
}

// ParseReceipt reads a receipt photo and suggests inventory lines. Nothing is stored.
func (s *Service) ParseReceipt(ctx context.Context, image []byte) (*domain.ReceiptParse, error) {
	if s.ocr == nil || !s.ocr.Configured() {
		return nil, fmt.Errorf("inventory.ParseReceipt: OCR service not configured: %w", domain.ErrUnavailable)
	}
	if len(image) == 0 {
		return nil, domain.NewValidationError("file", "required")
	}

	text, err := s.ocr.ExtractText(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("inventory.ParseReceipt: %w", domain.NewUpstreamError("ocrspace", err))
	}

	if strings.TrimSpace(text) == "" {
		return &domain.ReceiptParse{Items: []domain.ReceiptLine{}, Warnings: []string{warnNoText}}, nil
	}

	lines := ParseReceiptText(text)
	out := &domain.ReceiptParse{Items: lines, RawText: text, Warnings: []string{}}
	if len(lines) == 0 {
		out.Warnings = append(out.Warnings, warnNoItems)
	}

	s.log.InfoContext(ctx, "receipt parsed", slog.Int("lines", len(lines)))
	return out, nil
}

// ParseReceiptText extracts grocery lines from OCR text.
func ParseReceiptText(text string) []domain.ReceiptLine {
	out := []domain.ReceiptLine{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if len(line) < minReceiptLine || isReceiptNoise(line) {
			continue
		}

		m := receiptLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := titleCase(whitespace.ReplaceAllString(strings.TrimSpace(m[2]), " "))
		if len(name) < 2 {
			continue
		}

		qty, confidence := 1.0, confidenceNameOnly
		if m[1] != "" {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil && n > 0 {
				qty, confidence = n, confidenceWithQuantity
			}
		}

		category := domain.GuessCategory(name)
		out = append(out, domain.ReceiptLine{
			Name:                name,
			Quantity:            qty,
			Unit:                defaultUnit,
			SuggestedCategory:   category,
			SuggestedExpiryDays: domain.ShelfLife(category),
			Confidence:          confidence,
		})
	}
	return out
}

func isReceiptNoise(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range receiptNoise {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// titleCase upper-cases the first letter of every letter run and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// ConfirmReceipt creates every accepted line in one transaction.
func (s *Service) ConfirmReceipt(ctx context.Context, in ConfirmReceiptInput) ([]ItemView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a, err := s.resolveEditor(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.ConfirmReceipt: %w", err)
	}

	st, err := s.settings(ctx, a.user.ID)
	if err != nil {
		return nil, fmt.Errorf("inventory.ConfirmReceipt: %w", err)
	}

	created := make([]domain.Item, 0, len(in.Items))
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, line := range in.Items {
			it, err := s.items.Create(ctx, s.newItem(a, st, line))
			if err != nil {
				return fmt.Errorf("create %q: %w", line.Name, err)
			}
			created = append(created, *it)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.ConfirmReceipt: %w", err)
	}

	s.log.InfoContext(ctx, "receipt items added",
		slog.String("user_id", a.user.ID.String()),
		slog.Int("count", len(created)))
	return views(created, a.today), nil
}

// CreateMany adds several items for the authenticated user in one transaction.
// Shopping list import uses it.
func (s *Service) CreateMany(ctx context.Context, in []CreateInput) ([]ItemView, error) {
	return s.ConfirmReceipt(ctx, ConfirmReceiptInput{Items: in})
}
