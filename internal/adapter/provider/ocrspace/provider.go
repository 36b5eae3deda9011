// Package ocrspace extracts text from receipt images with the OCR.space API.
package ocrspace

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Provider calls OCR.space.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty apiKey leaves it unconfigured.
func NewProvider(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "ocrspace"),
	}
}

// Configured reports whether an API key is set.
func (p *Provider) Configured() bool { return p.apiKey != "" }

// ExtractText returns the text of the first parsed page, or "" when the image had none.
func (p *Provider) ExtractText(ctx context.Context, image []byte) (string, error) {
	form := url.Values{
		"language":          {"eng"},
		"isOverlayRequired": {"false"},
		"detectOrientation": {"true"},
		"scale":             {"true"},
		"OCREngine":         {"2"},
		"base64Image":       {"data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/parse/image", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("ocrspace: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", p.apiKey)

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocrspace: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocrspace: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ocrspace: read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("ocrspace: invalid json")
	}

	doc := gjson.ParseBytes(body)
	if doc.Get("IsErroredOnProcessing").Bool() {
		return "", fmt.Errorf("ocrspace: %s", errorMessage(doc.Get("ErrorMessage")))
	}

	text := doc.Get("ParsedResults.0.ParsedText").String()
	p.log.DebugContext(ctx, "ocr done",
		slog.Int("bytes", len(image)),
		slog.Int("chars", len(text)),
		slog.Duration("took", time.Since(start)),
	)
	return text, nil
}

// errorMessage reads ErrorMessage, which OCR.space sends as either a string or an array.
func errorMessage(v gjson.Result) string {
	if v.IsArray() {
		if arr := v.Array(); len(arr) > 0 {
			return arr[0].String()
		}
		return "unknown error"
	}
	if s := v.String(); s != "" {
		return s
	}
	return "unknown error"
}
