package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxAttempts = 3

// fetchData performs an authenticated GET against the platform API and
// returns the raw body. Transport errors and 5xx responses are retried with
// jittered exponential backoff; 4xx responses are not.
func (p *provider) fetchData(ctx context.Context, endpoint string) (json.RawMessage, error) {
	requestID := uuid.NewString()
	retry := newBackoff()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, retryable, err := p.doRequest(ctx, endpoint, requestID)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}

		delay := retry.Duration()
		p.logger.Warn("upstream request failed, retrying",
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, fmt.Errorf("giving up after %d attempts: %w", maxAttempts, lastErr)
}

func (p *provider) doRequest(ctx context.Context, endpoint, requestID string) (json.RawMessage, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building GET request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.serviceToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("executing GET %q: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, fmt.Errorf("reading %q response: %w", endpoint, err)
		}
		return body, false, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, fmt.Errorf("platform API returned %s for %q", resp.Status, endpoint)
	default:
		return nil, false, fmt.Errorf("platform API returned %s for %q", resp.Status, endpoint)
	}
}
