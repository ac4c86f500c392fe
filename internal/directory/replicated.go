package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/i5heu/relay-gatekeeper/internal/directive"
	"github.com/i5heu/relay-gatekeeper/internal/encryption"
	"github.com/i5heu/relay-gatekeeper/internal/transport"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
	"github.com/nbd-wtf/go-nostr"
)

const defaultTimeout = 10 * time.Second

type ReplicatedConfig struct {
	Keys   *encryption.KeyPair
	Relays transport.RelaySet
	// Admins may author deny documents addressed to the service.
	Admins types.IdentitySet
	// RestoreTimeout bounds each restore query.
	RestoreTimeout time.Duration
	// PublishTimeout bounds each list document publish.
	PublishTimeout time.Duration
	Logger         *slog.Logger
	// Now is the document clock. Defaults to nostr.Now.
	Now func() nostr.Timestamp
}

// listState is one of the two replicated sets.
type listState struct {
	label   string
	members types.IdentitySet
	// created is the timestamp of the newest document seen or written.
	created nostr.Timestamp
	// dirty is set while the network copy is known to be stale.
	dirty bool
}

// Replicated is the Directory that stores the allow and deny sets as
// self-encrypted list documents on the relays. The in-memory sets are
// authoritative for reads; the relays are only read at restore.
//
// Concurrent writers in different processes are not reconciled: the
// newest document wins at restore.
type Replicated struct { // A
	cfg  ReplicatedConfig
	self string

	mu    sync.RWMutex
	allow *listState
	deny  *listState
}

// NewReplicated restores both sets from the relays and returns the ready
// directory.
func NewReplicated( // A
	ctx context.Context,
	cfg ReplicatedConfig,
) (*Replicated, error) {
	if cfg.Keys == nil {
		return nil, errors.New("replicated directory needs a key pair")
	}
	if cfg.Relays == nil {
		return nil, errors.New("replicated directory needs relays")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RestoreTimeout <= 0 {
		cfg.RestoreTimeout = defaultTimeout
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultTimeout
	}
	if cfg.Now == nil {
		cfg.Now = nostr.Now
	}
	r := &Replicated{
		cfg:   cfg,
		self:  cfg.Keys.PublicKey(),
		allow: &listState{label: directive.LabelAllow, members: make(types.IdentitySet)},
		deny:  &listState{label: directive.LabelDeny, members: make(types.IdentitySet)},
	}
	if err := r.Restore(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Restore replaces both in-memory sets with the newest documents found on
// the relays. A set with no document starts empty.
func (r *Replicated) Restore(ctx context.Context) error { // A
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range []*listState{r.allow, r.deny} {
		members, created, err := r.restoreList(ctx, list.label)
		if err != nil {
			return err
		}
		list.members = members
		list.created = created
		list.dirty = false
	}

	// A crash between the two publishes of one write can leave an identity
	// in both documents; the newer document keeps it and a tie goes to
	// deny.
	newer, older := r.deny, r.allow
	if r.allow.created > r.deny.created {
		newer, older = r.allow, r.deny
	}
	for id := range newer.members {
		delete(older.members, id)
	}

	r.cfg.Logger.InfoContext(ctx, "directory restored",
		"allow", len(r.allow.members),
		"deny", len(r.deny.members))
	return nil
}

func (r *Replicated) restoreList( // A
	ctx context.Context,
	label string,
) (types.IdentitySet, nostr.Timestamp, error) {
	qctx, cancel := context.WithTimeout(ctx, r.cfg.RestoreTimeout)
	defer cancel()

	candidates, err := r.cfg.Relays.Query(qctx, restoreFilter(label, r.self))
	switch {
	case err != nil && ctx.Err() != nil:
		return nil, 0, fmt.Errorf("restore %s list: %w", label, err)
	case err != nil:
		r.cfg.Logger.WarnContext(ctx, "no relay answered, starting empty",
			logKeyLabel, label,
			logKeyError, err)
		return make(types.IdentitySet), 0, nil
	}

	latest := selectLatest(candidates, func(ev *nostr.Event) bool {
		return r.acceptDocument(ev, label)
	})
	if latest == nil {
		r.cfg.Logger.InfoContext(ctx, "no list document found",
			logKeyLabel, label)
		return make(types.IdentitySet), 0, nil
	}
	return r.readDocument(ctx, latest, label), latest.CreatedAt, nil
}

// acceptDocument checks kind, label, author and signature of a candidate.
func (r *Replicated) acceptDocument(ev *nostr.Event, label string) bool {
	if ev.Kind != ListKind || documentLabel(ev) != label {
		return false
	}
	if ev.PubKey != r.self {
		if label == directive.LabelAllow {
			return false
		}
		author, err := types.ParseIdentity(ev.PubKey)
		if err != nil || !r.cfg.Admins.Has(author) {
			return false
		}
	}
	ok, err := ev.CheckSignature()
	return err == nil && ok
}

// readDocument decrypts the content and unions in the plaintext tags.
func (r *Replicated) readDocument( // A
	ctx context.Context,
	ev *nostr.Event,
	label string,
) types.IdentitySet {
	members := tagIdentities(ev, label)
	if ev.Content == "" {
		return members
	}
	plain, err := r.cfg.Keys.Decrypt(ev.PubKey, ev.Content)
	if err != nil {
		r.cfg.Logger.WarnContext(ctx, "list document content unreadable",
			logKeyEventID, ev.ID,
			logKeyError, err)
		return members
	}
	ids, rejected, err := decodeList(plain)
	if err != nil {
		r.cfg.Logger.WarnContext(ctx, "list document content malformed",
			logKeyEventID, ev.ID,
			logKeyError, err)
		return members
	}
	if len(rejected) > 0 {
		r.cfg.Logger.WarnContext(ctx, "list document has malformed entries",
			logKeyEventID, ev.ID,
			logKeyRejected, len(rejected))
	}
	for _, id := range ids {
		members.Add(id)
	}
	r.cfg.Logger.DebugContext(ctx, "list document restored",
		logKeyLabel, label,
		logKeyEventID, ev.ID,
		logKeyAuthor, ev.PubKey,
		logKeyCreated, ev.CreatedAt)
	return members
}

func (r *Replicated) Get(_ context.Context, id types.Identity) (types.Lookup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch {
	case r.allow.members.Has(id):
		return types.Lookup{Known: true, Status: types.StatusAllow}, nil
	case r.deny.members.Has(id):
		return types.Lookup{Known: true, Status: types.StatusDeny}, nil
	}
	return types.Lookup{}, nil
}

func (r *Replicated) Admit(ctx context.Context, ids []types.Identity) error {
	return r.move(ctx, ids, r.allow, r.deny)
}

func (r *Replicated) Deny(ctx context.Context, ids []types.Identity) error {
	return r.move(ctx, ids, r.deny, r.allow)
}

// move adds ids to into and removes them from from, then publishes every
// set that changed or is still dirty from an earlier failed publish. The
// lock is held across the publish.
func (r *Replicated) move( // A
	ctx context.Context,
	ids []types.Identity,
	into, from *listState,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var added []types.Identity
	for _, id := range ids {
		if !into.members.Has(id) {
			into.members.Add(id)
			added = append(added, id)
		}
		if from.members.Has(id) {
			delete(from.members, id)
			from.dirty = true
		}
	}
	if len(added) > 0 {
		into.dirty = true
	}

	var errs []error
	for _, list := range []*listState{into, from} {
		if !list.dirty {
			continue
		}
		// Only members may appear in the redundancy tags, so the list
		// that lost identities is republished without them.
		var changed []types.Identity
		if list == into {
			changed = added
		}
		if err := r.publish(ctx, list, changed); err != nil {
			errs = append(errs, err)
			continue
		}
		list.dirty = false
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrPublish, errors.Join(errs...))
	}
	return nil
}

// publish writes the full content of list as a new document. changed is
// carried in plaintext tags.
func (r *Replicated) publish( // A
	ctx context.Context,
	list *listState,
	changed []types.Identity,
) error {
	ev, err := r.newDocument(list, changed)
	if err != nil {
		return err
	}
	pctx, cancel := context.WithTimeout(ctx, r.cfg.PublishTimeout)
	defer cancel()
	if err := r.cfg.Relays.Publish(pctx, ev); err != nil {
		r.cfg.Logger.WarnContext(ctx, "list document publish failed",
			logKeyLabel, list.label,
			logKeyEventID, ev.ID,
			logKeyError, err)
		return fmt.Errorf("publish %s list: %w", list.label, err)
	}
	list.created = ev.CreatedAt
	r.cfg.Logger.InfoContext(ctx, "list document published",
		logKeyLabel, list.label,
		logKeyEventID, ev.ID,
		logKeyCount, len(list.members))
	return nil
}

// newDocument builds and signs a list document. Its created_at is kept
// strictly above the newest document of either list so restore ordering
// follows write order across both lists.
func (r *Replicated) newDocument( // A
	list *listState,
	changed []types.Identity,
) (nostr.Event, error) {
	body, err := encodeList(list.members)
	if err != nil {
		return nostr.Event{}, err
	}
	content, err := r.cfg.Keys.Seal(body)
	if err != nil {
		return nostr.Event{}, fmt.Errorf("seal %s list: %w", list.label, err)
	}
	floor := max(r.allow.created, r.deny.created)
	created := r.cfg.Now()
	if created <= floor {
		created = floor + 1
	}
	ev := nostr.Event{
		CreatedAt: created,
		Kind:      ListKind,
		Tags:      documentTags(list.label, r.self, changed),
		Content:   content,
	}
	if err := r.cfg.Keys.Sign(&ev); err != nil {
		return nostr.Event{}, err
	}
	return ev, nil
}

func (r *Replicated) Snapshot(_ context.Context) (Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Allow: r.allow.members.Clone(),
		Deny:  r.deny.members.Clone(),
	}, nil
}

// Close is a no-op; the relay connections belong to the caller.
func (r *Replicated) Close() error {
	return nil
}

var _ Directory = (*Replicated)(nil)
