// Package poller keeps a display in sync with the metrics endpoint.
// It fetches once at start and then on every tick, rendering the response
// body as indented JSON or a fixed error text. Fetches are not coordinated:
// when they overlap, whichever completes last determines the display.
package poller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrorText replaces the display whenever a fetch fails.
const ErrorText = "Error loading metrics."

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 1 << 20

// Display receives the text to show after each fetch.
type Display interface {
	Show(text string)
}

// Poller periodically fetches a JSON document and renders it.
type Poller struct {
	url      string
	interval time.Duration
	client   *http.Client
	display  Display
	logger   *zap.Logger

	wg sync.WaitGroup
}

// New creates a Poller. requestTimeout bounds each fetch; zero disables it.
func New(url string, interval, requestTimeout time.Duration, display Display, logger *zap.Logger) *Poller {
	return &Poller{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: requestTimeout},
		display:  display,
		logger:   logger,
	}
}

// Run fetches immediately and then on every interval tick until ctx is
// cancelled. It returns after all in-flight fetches have finished.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer p.wg.Wait()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll starts one fetch without waiting for it.
func (p *Poller) poll(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		text, err := p.fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			p.logger.Warn("Failed to load metrics",
				zap.String("url", p.url),
				zap.Error(err))
			p.display.Show(ErrorText)
			return
		}
		p.display.Show(text)
	}()
}

// fetch performs one GET and returns the body re-indented with two spaces.
func (p *Poller) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return out.String(), nil
}
