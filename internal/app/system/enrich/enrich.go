// Package enrich implements the post-creation enrichment worker. After a
// user is created, the worker fetches a configured URL, substitutes every
// occurrence of the placeholder token with the new user's id, and stores
// the result on the user record.
//
// The worker is fire-and-forget: it runs on its own goroutine with its own
// context (the triggering request's scope may already be closed), makes one
// attempt, and never reports back to the request path. A failed enrichment
// leaves the payload absent indefinitely.
package enrich

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Placeholder is the literal token replaced with the user id in the
// fetched content.
const Placeholder = "{user}"

// PayloadStore is the narrow slice of the user store the worker needs.
type PayloadStore interface {
	AttachEnrichment(ctx context.Context, id, payload string) error
}

// Enricher fetches external content and attaches it to users.
type Enricher struct {
	url     string
	client  *http.Client
	store   PayloadStore
	log     *zap.Logger
	timeout time.Duration
}

// New creates an Enricher that fetches url with the given timeout and
// stores payloads through store.
func New(url string, timeout time.Duration, store PayloadStore, logger *zap.Logger) *Enricher {
	return &Enricher{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		store:   store,
		log:     logger,
		timeout: timeout,
	}
}

// Dispatch schedules enrichment for userID and returns immediately. The
// goroutine gets a detached context so request cancellation cannot abort an
// in-flight enrichment. Errors are logged and swallowed; there is no retry.
func (e *Enricher) Dispatch(userID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		if err := e.Enrich(ctx, userID); err != nil {
			e.log.Warn("enrichment failed",
				zap.String("user_id", userID),
				zap.String("url", e.url),
				zap.Error(err))
		}
	}()
}

// Enrich performs one fetch-substitute-store pass for userID.
func (e *Enricher) Enrich(ctx context.Context, userID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	payload := strings.ReplaceAll(string(body), Placeholder, userID)
	if err := e.store.AttachEnrichment(ctx, userID, payload); err != nil {
		return fmt.Errorf("store payload: %w", err)
	}

	e.log.Debug("enrichment stored",
		zap.String("user_id", userID),
		zap.Int("payload_bytes", len(payload)))
	return nil
}
