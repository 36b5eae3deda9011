// Package upcitemdb looks up products by barcode in the UPCitemdb trial API.
package upcitemdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/provider"
)

// Provider queries the UPCitemdb lookup endpoint.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given base URL.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "upcitemdb"),
	}
}

// Name identifies the provider in errors and logs.
func (p *Provider) Name() string { return string(domain.SourceUPCItemDB) }

// Lookup returns the first matching item, or nil, nil when nothing matched.
func (p *Provider) Lookup(ctx context.Context, upc string) (*domain.Product, error) {
	reqURL := p.baseURL + "/prod/trial/lookup?" + url.Values{"upc": {upc}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("upcitemdb: create request: %w", err)
	}
	req.Header.Set("User-Agent", provider.UserAgent)

	resp, err := provider.DoWithRetry(ctx, p.httpClient, req, p.log)
	if err != nil {
		return nil, fmt.Errorf("upcitemdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upcitemdb: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upcitemdb: read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("upcitemdb: invalid json")
	}

	doc := gjson.ParseBytes(body)
	if doc.Get("code").String() != "OK" {
		return nil, nil
	}

	item := doc.Get("items.0")
	name := item.Get("title").String()
	if !item.Exists() || name == "" {
		return nil, nil
	}

	category := domain.GuessCategory(name)
	out := &domain.Product{
		Found:               true,
		Source:              domain.SourceUPCItemDB,
		UPC:                 upc,
		Name:                name,
		Brand:               item.Get("brand").String(),
		Category:            category,
		SuggestedExpiryDays: domain.ShelfLife(category),
	}
	if img := item.Get("images.0").String(); img != "" {
		out.ImageURL = &img
	}
	return out, nil
}
