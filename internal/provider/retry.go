package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// UserAgent identifies outgoing requests to public APIs.
const UserAgent = "FreshKeep/1.0"

// RetryDelay is the pause before the single retry. Tests shorten it.
var RetryDelay = 500 * time.Millisecond

// DoWithRetry executes an idempotent request with a single retry on 5xx or network errors.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, log *slog.Logger) (*http.Response, error) {
	resp, err := client.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	log.WarnContext(ctx, "retrying request", slog.String("url", req.URL.Redacted()), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(RetryDelay):
	}

	return client.Do(req)
}
