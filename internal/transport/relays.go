// Package transport carries list documents to and from the configured
// nostr relays.
package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nbd-wtf/go-nostr"
	"go.uber.org/multierr"
)

const (
	logKeyRelay = "relay"
	logKeyError = "error"
	logKeyEvent = "eventId"
)

var ErrNoRelays = errors.New("no relays configured")

// RelaySet is what the replicated directory needs from the network.
type RelaySet interface {
	// Query returns the stored events matching filter from every relay,
	// deduplicated by id.
	Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error)
	// Publish sends ev to every relay. It fails only when no relay
	// accepted the event.
	Publish(ctx context.Context, ev nostr.Event) error
}

// Relays is a RelaySet over websocket connections. Connections are opened
// lazily and dropped after any error so the next call reconnects.
type Relays struct { // A
	urls   []string
	logger *slog.Logger

	mu    sync.Mutex
	conns map[string]*nostr.Relay
}

func NewRelays( // A
	urls []string,
	logger *slog.Logger,
) *Relays {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relays{
		urls:   append([]string(nil), urls...),
		logger: logger,
		conns:  make(map[string]*nostr.Relay),
	}
}

func (r *Relays) connect( // A
	ctx context.Context,
	url string,
) (*nostr.Relay, error) {
	r.mu.Lock()
	c, ok := r.conns[url]
	r.mu.Unlock()
	if ok {
		return c, nil
	}

	c, err := nostr.RelayConnect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", url, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.conns[url]; ok {
		_ = c.Close()
		return existing, nil
	}
	r.conns[url] = c
	return c, nil
}

func (r *Relays) drop(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.conns[url]; ok {
		_ = c.Close()
		delete(r.conns, url)
	}
}

// each runs fn against every relay concurrently and returns the number of
// relays that succeeded together with the combined failures.
func (r *Relays) each( // A
	ctx context.Context,
	fn func(ctx context.Context, url string, c *nostr.Relay) error,
) (int, error) {
	if len(r.urls) == 0 {
		return 0, ErrNoRelays
	}
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ok   int
		errs error
	)
	for _, url := range r.urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			c, err := r.connect(ctx, url)
			if err == nil {
				err = fn(ctx, url, c)
				if err != nil {
					r.drop(url)
				}
			}
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.logger.WarnContext(ctx, "relay call failed",
					logKeyRelay, url,
					logKeyError, err)
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", url, err))
				return
			}
			ok++
		}(url)
	}
	wg.Wait()
	return ok, errs
}

func (r *Relays) Query( // A
	ctx context.Context,
	filter nostr.Filter,
) ([]*nostr.Event, error) {
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		out  []*nostr.Event
	)
	ok, err := r.each(ctx, func(ctx context.Context, _ string, c *nostr.Relay) error {
		events, err := c.QuerySync(ctx, filter)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		for _, ev := range events {
			if _, dup := seen[ev.ID]; dup {
				continue
			}
			seen[ev.ID] = struct{}{}
			out = append(out, ev)
		}
		return nil
	})
	if ok == 0 {
		return nil, fmt.Errorf("query relays: %w", err)
	}
	return out, nil
}

func (r *Relays) Publish( // A
	ctx context.Context,
	ev nostr.Event,
) error {
	ok, err := r.each(ctx, func(ctx context.Context, url string, c *nostr.Relay) error {
		if err := c.Publish(ctx, ev); err != nil {
			return err
		}
		r.logger.DebugContext(ctx, "published event",
			logKeyRelay, url,
			logKeyEvent, ev.ID)
		return nil
	})
	if ok == 0 {
		return fmt.Errorf("publish to relays: %w", err)
	}
	return nil
}

// Close drops every open connection.
func (r *Relays) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs error
	for url, c := range r.conns {
		errs = multierr.Append(errs, c.Close())
		delete(r.conns, url)
	}
	return errs
}

var _ RelaySet = (*Relays)(nil)
