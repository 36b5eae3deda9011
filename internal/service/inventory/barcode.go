package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

var upcPattern = regexp.MustCompile(`^\d{6,14}$`)

const barcodeCachePrefix = "barcode:"

// LookupBarcode resolves a product by UPC/EAN. Found results are cached. An
// unknown code returns a product with Found false. Fails with domain.ErrUpstream
// only when every remote provider failed.
func (s *Service) LookupBarcode(ctx context.Context, upc string) (*domain.Product, error) {
	upc = strings.TrimSpace(upc)
	if !upcPattern.MatchString(upc) {
		return nil, domain.NewValidationError("upc", "must be 6-14 digits")
	}

	key := barcodeCachePrefix + upc
	if s.lookups.Cache != nil {
		var cached domain.Product
		hit, err := s.lookups.Cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.WarnContext(ctx, "barcode cache read failed", slog.String("error", err.Error()))
		}
		if hit {
			return &cached, nil
		}
	}

	if s.lookups.Local != nil {
		p, err := s.lookups.Local.Lookup(ctx, upc)
		if err == nil && p != nil {
			s.remember(ctx, key, p)
			return p, nil
		}
	}

	var errs []error
	for _, l := range s.lookups.Remote {
		p, err := l.Lookup(ctx, upc)
		if err != nil {
			s.log.WarnContext(ctx, "barcode provider failed",
				slog.String("provider", l.Name()),
				slog.String("upc", upc),
				slog.String("error", err.Error()))
			errs = append(errs, domain.NewUpstreamError(l.Name(), err))
			continue
		}
		if p != nil {
			s.remember(ctx, key, p)
			return p, nil
		}
	}

	if len(s.lookups.Remote) > 0 && len(errs) == len(s.lookups.Remote) {
		return nil, fmt.Errorf("inventory.LookupBarcode: %w", errors.Join(errs...))
	}
	return &domain.Product{Found: false, UPC: upc}, nil
}

func (s *Service) remember(ctx context.Context, key string, p *domain.Product) {
	if s.lookups.Cache == nil {
		return
	}
	if err := s.lookups.Cache.Set(ctx, key, p, s.lookups.CacheTTL); err != nil {
		s.log.WarnContext(ctx, "barcode cache write failed", slog.String("error", err.Error()))
	}
}
