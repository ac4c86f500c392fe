package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/i5heu/relay-gatekeeper/internal/keyValStore"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
)

// accountTable prefixes every row of the account table. Keys are the hex
// identity, values a single status byte.
const accountTable = "account/"

// Local is the Directory backed by the local key value store.
type Local struct {
	mu     sync.RWMutex
	kv     *keyValStore.KeyValStore
	logger *slog.Logger
}

func NewLocal(kv *keyValStore.KeyValStore, logger *slog.Logger) *Local { // A
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{kv: kv, logger: logger}
}

func accountKey(id types.Identity) []byte {
	return []byte(accountTable + id.String())
}

func (l *Local) Get(_ context.Context, id types.Identity) (types.Lookup, error) { // A
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, found, err := l.kv.Read(accountKey(id))
	if err != nil {
		return types.Lookup{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !found {
		return types.Lookup{}, nil
	}
	status := types.StatusDeny
	if len(v) > 0 {
		status = types.StatusFromByte(v[0])
	}
	return types.Lookup{Known: true, Status: status}, nil
}

func (l *Local) Admit(ctx context.Context, ids []types.Identity) error {
	return l.write(ctx, ids, types.StatusAllow)
}

func (l *Local) Deny(ctx context.Context, ids []types.Identity) error {
	return l.write(ctx, ids, types.StatusDeny)
}

// write stores the whole batch in one transaction.
func (l *Local) write( // A
	ctx context.Context,
	ids []types.Identity,
	status types.Status,
) error {
	if len(ids) == 0 {
		return nil
	}
	batch := make([][2][]byte, 0, len(ids))
	for _, id := range ids {
		batch = append(batch, [2][]byte{accountKey(id), {status.Byte()}})
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.kv.WriteBatch(batch); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	l.logger.DebugContext(ctx, "accounts updated",
		logKeyLabel, status.String(),
		logKeyCount, len(ids))
	return nil
}

func (l *Local) Snapshot(ctx context.Context) (Snapshot, error) { // A
	l.mu.RLock()
	defer l.mu.RUnlock()
	items, err := l.kv.GetItemsWithPrefix([]byte(accountTable))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	snap := newSnapshot()
	for _, item := range items {
		key := strings.TrimPrefix(string(item[0]), accountTable)
		id, err := types.ParseIdentity(key)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping malformed account row",
				logKeyKey, key,
				logKeyError, err)
			continue
		}
		var b byte
		if len(item[1]) > 0 {
			b = item[1][0]
		}
		if types.StatusFromByte(b) == types.StatusAllow {
			snap.Allow.Add(id)
		} else {
			snap.Deny.Add(id)
		}
	}
	return snap, nil
}

func (l *Local) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.kv.Close()
}

var _ Directory = (*Local)(nil)
