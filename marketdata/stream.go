// Package marketdata is the plumbing between an external quote publisher and
// the in-process latest-quote store. The ledger and backtester never touch
// it directly; they read normalized numeric inputs only.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rustyeddy/papertrade/market"
)

// StreamConfig configures the websocket quote client.
//
// The wire format is one JSON quote per message:
//
//	{"symbol":"RELIANCE","ltp":2841.5,"change":12.3,"changePct":0.44,"time":"..."}
type StreamConfig struct {
	// URL of the quote stream, e.g. "ws://localhost:9001/stream".
	URL string

	// ReconnectDelay is the initial delay before reconnect attempts;
	// backoff doubles up to MaxReconnectDelay.
	ReconnectDelay    time.Duration
	MaxReconnectDelay time.Duration
}

func (c *StreamConfig) defaults() {
	if c.ReconnectDelay == 0 {
		c.ReconnectDelay = 2 * time.Second
	}
	if c.MaxReconnectDelay == 0 {
		c.MaxReconnectDelay = 30 * time.Second
	}
}

// StreamClient consumes a JSON quote feed and keeps a QuoteStore current.
type StreamClient struct {
	cfg   StreamConfig
	store *market.QuoteStore

	// OnQuote, if set, observes every quote after the store update.
	OnQuote func(market.Quote)
}

func NewStreamClient(cfg StreamConfig, store *market.QuoteStore) (*StreamClient, error) {
	cfg.defaults()
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("stream url: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("quote store is required")
	}
	return &StreamClient{cfg: cfg, store: store}, nil
}

// Run connects and streams quotes into the store until ctx is cancelled,
// reconnecting with backoff on any disconnect.
func (s *StreamClient) Run(ctx context.Context) error {
	delay := s.cfg.ReconnectDelay

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		err := s.runOnce(ctx)
		if err == nil {
			return nil // context cancelled cleanly
		}

		log.Printf("marketdata: disconnected (%v), reconnecting in %s", err, delay)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		delay *= 2
		if delay > s.cfg.MaxReconnectDelay {
			delay = s.cfg.MaxReconnectDelay
		}
	}
}

func (s *StreamClient) runOnce(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.cfg.URL, err)
	}
	defer conn.Close()

	// Unblock ReadMessage when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		var q market.Quote
		if err := json.Unmarshal(data, &q); err != nil {
			log.Printf("marketdata: bad quote %q: %v", data, err)
			continue
		}
		if q.Symbol == "" {
			continue
		}
		if q.Time.IsZero() {
			q.Time = time.Now()
		}

		s.store.Set(q)
		if s.OnQuote != nil {
			s.OnQuote(q)
		}
	}
}
