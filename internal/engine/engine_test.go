package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/i5heu/relay-gatekeeper/internal/directory"
	"github.com/i5heu/relay-gatekeeper/internal/encryption"
	"github.com/i5heu/relay-gatekeeper/internal/keyValStore"
	"github.com/i5heu/relay-gatekeeper/internal/testutil"
	"github.com/i5heu/relay-gatekeeper/pkg/logging"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const controlKind = 4242

var (
	aaa = strings.Repeat("a", 64)
	bbb = strings.Repeat("b", 64)
)

func newDirectory(t *testing.T) directory.Directory {
	t.Helper()
	kv, err := keyValStore.NewKeyValStore(keyValStore.StoreConfig{InMemory: true})
	require.NoError(t, err)
	dir := directory.NewLocal(kv, logging.Discard())
	t.Cleanup(func() { _ = dir.Close() })
	return dir
}

func newEngine(t *testing.T, admin types.Identity, implicit bool) *Engine {
	t.Helper()
	return New(Config{
		Directory:     newDirectory(t),
		Admins:        types.NewIdentitySet(admin),
		ControlKind:   controlKind,
		ImplicitAllow: implicit,
		Logger:        logging.Discard(),
	})
}

// backend is one Directory implementation under test. published reports
// how many list documents reached the relays, or -1 for storage that does
// not publish.
type backend struct {
	dir       directory.Directory
	published func() int
}

func backends() map[string]func(t *testing.T) backend {
	return map[string]func(t *testing.T) backend{
		"local": func(t *testing.T) backend {
			return backend{dir: newDirectory(t), published: func() int { return -1 }}
		},
		"replicated": func(t *testing.T) backend {
			kp, err := encryption.NewKeyPair(nostr.GeneratePrivateKey())
			require.NoError(t, err)
			relays := testutil.NewMemoryRelays()
			dir, err := directory.NewReplicated(context.Background(), directory.ReplicatedConfig{
				Keys:   kp,
				Relays: relays,
				Logger: logging.Discard(),
			})
			require.NoError(t, err)
			t.Cleanup(func() { _ = dir.Close() })
			return backend{dir: dir, published: relays.Published}
		},
	}
}

func event(author types.Identity, kind uint64, tags ...[]string) *types.Event {
	return &types.Event{
		Pubkey:  author.Bytes(),
		Kind:    kind,
		Content: "hello",
		Tags:    tags,
	}
}

func TestDecideAdminAllowThenAuthor(t *testing.T) { // A
	t.Parallel()
	ctx := context.Background()
	admin := testutil.NewIdentity(t)
	e := newEngine(t, admin, false)
	target := testutil.Identity(t, aaa)

	v, err := e.Decide(ctx, Request{Event: event(target, 1)})
	require.NoError(t, err)
	assert.Equal(t, types.Deny(), v)

	v, err = e.Decide(ctx, Request{Event: event(admin, controlKind, []string{"allow", aaa})})
	require.NoError(t, err)
	assert.Equal(t, types.Permit(), v)

	v, err = e.Decide(ctx, Request{Event: event(target, 1)})
	require.NoError(t, err)
	assert.Equal(t, types.Verdict{Decision: types.DecisionPermit, Message: "Ok"}, v)

	v, err = e.Decide(ctx, Request{Event: event(admin, controlKind, []string{"deny", aaa})})
	require.NoError(t, err)
	assert.Equal(t, types.Permit(), v)

	v, err = e.Decide(ctx, Request{Event: event(target, 1)})
	require.NoError(t, err)
	assert.Equal(t, types.Verdict{Decision: types.DecisionDeny, Message: "Not allowed to publish"}, v)
}

func TestDecideControlEventOnEveryBackend(t *testing.T) { // A
	t.Parallel()
	for name, mk := range backends() {
		name, mk := name, mk
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			b := mk(t)
			admin := testutil.NewIdentity(t)
			e := New(Config{
				Directory:   b.dir,
				Admins:      types.NewIdentitySet(admin),
				ControlKind: controlKind,
				Logger:      logging.Discard(),
			})
			target := testutil.Identity(t, aaa)

			v, err := e.Decide(ctx, Request{Event: event(admin, controlKind,
				[]string{"allow", aaa},
				[]string{"deny", bbb},
			)})
			require.NoError(t, err)
			assert.Equal(t, types.Permit(), v)

			v, err = e.Decide(ctx, Request{Event: event(target, 1)})
			require.NoError(t, err)
			assert.Equal(t, types.Permit(), v)

			v, err = e.Decide(ctx, Request{Event: event(testutil.Identity(t, bbb), 1)})
			require.NoError(t, err)
			assert.Equal(t, types.Deny(), v)

			if name == "replicated" {
				// One allow document and one deny document.
				assert.Equal(t, 2, b.published())
			} else {
				assert.Equal(t, -1, b.published())
			}
		})
	}
}

func TestDecideLogsRequestMetadata(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := New(Config{
		Directory:   newDirectory(t),
		ControlKind: controlKind,
		Logger:      logging.New(&buf, slog.LevelInfo),
	})
	_, err := e.Decide(context.Background(), Request{
		Event:     event(testutil.NewIdentity(t), 1),
		IPAddr:    "192.0.2.7",
		UserAgent: "strfry/1.0",
		Origin:    "wss://relay.example",
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "192.0.2.7")
	assert.Contains(t, out, "strfry/1.0")
	assert.Contains(t, out, "wss://relay.example")
}

func TestDecideDirectivesApplyInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := testutil.NewIdentity(t)
	e := newEngine(t, admin, false)

	_, err := e.Decide(ctx, Request{Event: event(admin, controlKind,
		[]string{"allow", aaa, bbb},
		[]string{"p", aaa},
		[]string{"deny", bbb, "not-a-key"},
	)})
	require.NoError(t, err)

	snap, err := e.Directory().Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.NewIdentitySet(testutil.Identity(t, aaa)), snap.Allow)
	assert.Equal(t, types.NewIdentitySet(testutil.Identity(t, bbb)), snap.Deny)
}

func TestDecideAdminControlEventAlwaysPermitted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := testutil.NewIdentity(t)
	e := newEngine(t, admin, false)

	// The administrator denies itself; the control event is still permitted.
	v, err := e.Decide(ctx, Request{Event: event(admin, controlKind, []string{"deny", admin.String()})})
	require.NoError(t, err)
	assert.Equal(t, types.Permit(), v)

	v, err = e.Decide(ctx, Request{Event: event(admin, controlKind)})
	require.NoError(t, err)
	assert.Equal(t, types.Permit(), v)

	// Ordinary events from the denied administrator go through the lookup.
	v, err = e.Decide(ctx, Request{Event: event(admin, 1)})
	require.NoError(t, err)
	assert.Equal(t, types.Deny(), v)
}

func TestDecideControlKindFromStrangerIsOrdinary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, testutil.NewIdentity(t), false)
	stranger := testutil.NewIdentity(t)

	v, err := e.Decide(ctx, Request{Event: event(stranger, controlKind, []string{"allow", stranger.String()})})
	require.NoError(t, err)
	assert.Equal(t, types.Deny(), v)

	got, err := e.Directory().Get(ctx, stranger)
	require.NoError(t, err)
	assert.False(t, got.Known)
}

func TestDecideAuthPubkeyTakesPrecedence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := testutil.NewIdentity(t)
	e := newEngine(t, admin, false)
	allowed := testutil.NewIdentity(t)
	require.NoError(t, e.Directory().Admit(ctx, []types.Identity{allowed}))
	other := testutil.NewIdentity(t)

	v, err := e.Decide(ctx, Request{Event: event(other, 1), AuthPubkey: allowed.Bytes()})
	require.NoError(t, err)
	assert.Equal(t, types.Permit(), v)

	v, err = e.Decide(ctx, Request{Event: event(allowed, 1), AuthPubkey: other.Bytes()})
	require.NoError(t, err)
	assert.Equal(t, types.Deny(), v)

	// An authenticated administrator may send control events signed by
	// another key.
	v, err = e.Decide(ctx, Request{
		Event:      event(other, controlKind, []string{"allow", other.String()}),
		AuthPubkey: admin.Bytes(),
	})
	require.NoError(t, err)
	assert.Equal(t, types.Permit(), v)
	got, err := e.Directory().Get(ctx, other)
	require.NoError(t, err)
	assert.True(t, got.Admitted())
}

func TestDecideImplicitAllow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, testutil.NewIdentity(t), true)
	unknown := testutil.NewIdentity(t)
	denied := testutil.NewIdentity(t)
	require.NoError(t, e.Directory().Deny(ctx, []types.Identity{denied}))

	v, err := e.Decide(ctx, Request{Event: event(unknown, 1)})
	require.NoError(t, err)
	assert.Equal(t, types.Permit(), v)

	v, err = e.Decide(ctx, Request{Event: event(denied, 1)})
	require.NoError(t, err)
	assert.Equal(t, types.Deny(), v)
}

func TestDecideRequestErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, testutil.NewIdentity(t), false)

	_, err := e.Decide(ctx, Request{})
	assert.ErrorIs(t, err, ErrMissingEvent)

	v, err := e.Decide(ctx, Request{Event: &types.Event{Pubkey: []byte{1, 2, 3}, Kind: 1}})
	require.NoError(t, err)
	assert.Equal(t, types.Deny(), v)
}

func TestDecideDirectoryFailureIsNotDenial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin := testutil.NewIdentity(t)
	e := newEngine(t, admin, false)
	require.NoError(t, e.Directory().Close())

	_, err := e.Decide(ctx, Request{Event: event(testutil.NewIdentity(t), 1)})
	assert.ErrorIs(t, err, ErrDirectory)
	assert.ErrorIs(t, err, directory.ErrStorage)

	_, err = e.Decide(ctx, Request{Event: event(admin, controlKind, []string{"allow", aaa})})
	assert.True(t, errors.Is(err, ErrDirectory))
}

func TestContentSample(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", "short"},
		{strings.Repeat("x", 50), strings.Repeat("x", 40)},
		{strings.Repeat("ü", 45), strings.Repeat("ü", 40)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contentSample(tt.in))
	}
}
