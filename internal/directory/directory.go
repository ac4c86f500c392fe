// Package directory holds the allow and deny classification of every known
// author. Two backends share the Directory contract: Local keeps one badger
// row per identity, Replicated keeps the two sets in memory and persists
// them as encrypted list documents on the relay network.
package directory

import (
	"context"
	"errors"

	"github.com/i5heu/relay-gatekeeper/pkg/types"
)

var (
	// ErrStorage wraps local transaction failures.
	ErrStorage = errors.New("directory storage failure")
	// ErrPublish wraps list document publication failures. The in-memory
	// change has already been applied when it is returned.
	ErrPublish = errors.New("directory publish failure")
)

const (
	logKeyCount    = "count"
	logKeyError    = "error"
	logKeyLabel    = "label"
	logKeyKey      = "key"
	logKeyEventID  = "eventId"
	logKeyAuthor   = "author"
	logKeyCreated  = "createdAt"
	logKeyRejected = "rejected"
)

// Directory is the account directory consulted by the decision engine and
// the control API. Every implementation serializes its own operations;
// callers never need extra locking.
type Directory interface {
	// Get returns the stored status. Absence is Lookup{Known: false}.
	Get(ctx context.Context, id types.Identity) (types.Lookup, error)
	// Admit moves ids to the allow set and out of the deny set.
	Admit(ctx context.Context, ids []types.Identity) error
	// Deny moves ids to the deny set and out of the allow set.
	Deny(ctx context.Context, ids []types.Identity) error
	// Snapshot returns both sets as of a single point in time.
	Snapshot(ctx context.Context) (Snapshot, error)
	Close() error
}

// Snapshot is a point-in-time copy of both sets.
type Snapshot struct {
	Allow types.IdentitySet
	Deny  types.IdentitySet
}

func newSnapshot() Snapshot {
	return Snapshot{
		Allow: make(types.IdentitySet),
		Deny:  make(types.IdentitySet),
	}
}
