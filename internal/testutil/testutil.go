// Package testutil holds fakes shared by package tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/i5heu/relay-gatekeeper/internal/transport"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
	"github.com/nbd-wtf/go-nostr"
)

var ErrRelayDown = errors.New("relay down")

// MemoryRelays is an in-process RelaySet. Events are stored verbatim and
// queried with nostr filter matching.
type MemoryRelays struct {
	mu        sync.Mutex
	events    []nostr.Event
	published int
	failing   bool
}

func NewMemoryRelays() *MemoryRelays {
	return &MemoryRelays{}
}

// SetFailing makes every following call return ErrRelayDown.
func (m *MemoryRelays) SetFailing(failing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = failing
}

// Store adds ev without counting it as a publish.
func (m *MemoryRelays) Store(ev nostr.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
}

// Published returns how many events went through Publish.
func (m *MemoryRelays) Published() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.published
}

// Events returns a copy of every stored event.
func (m *MemoryRelays) Events() []nostr.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]nostr.Event(nil), m.events...)
}

func (m *MemoryRelays) Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, ErrRelayDown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*nostr.Event
	for i := range m.events {
		if filter.Matches(&m.events[i]) {
			ev := m.events[i]
			out = append(out, &ev)
		}
	}
	return out, nil
}

func (m *MemoryRelays) Publish(ctx context.Context, ev nostr.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return ErrRelayDown
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.events = append(m.events, ev)
	m.published++
	return nil
}

var _ transport.RelaySet = (*MemoryRelays)(nil)

// Identity parses a hex key or fails the test.
func Identity(t testing.TB, s string) types.Identity {
	t.Helper()
	id, err := types.ParseIdentity(s)
	if err != nil {
		t.Fatalf("parse identity %q: %v", s, err)
	}
	return id
}

// NewIdentity returns the public key of a fresh secret key.
func NewIdentity(t testing.TB) types.Identity {
	t.Helper()
	pub, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return Identity(t, pub)
}
