package apiServer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/i5heu/relay-gatekeeper/internal/directory"
	"github.com/i5heu/relay-gatekeeper/internal/keyValStore"
	"github.com/i5heu/relay-gatekeeper/internal/testutil"
	"github.com/i5heu/relay-gatekeeper/pkg/logging"
	"github.com/i5heu/relay-gatekeeper/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "s3cret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newDirectory(t *testing.T) directory.Directory {
	t.Helper()
	kv, err := keyValStore.NewKeyValStore(keyValStore.StoreConfig{InMemory: true})
	require.NoError(t, err)
	dir := directory.NewLocal(kv, logging.Discard())
	t.Cleanup(func() { _ = dir.Close() })
	return dir
}

func newTestServer(t *testing.T) (*Server, directory.Directory) {
	t.Helper()
	dir := newDirectory(t)
	return New(dir, testKey, WithLogger(logging.Discard())), dir
}

func do(t *testing.T, s *Server, method, path, key string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestUpdateAndList(t *testing.T) { // A
	t.Parallel()
	s, dir := newTestServer(t)
	x := testutil.NewIdentity(t)
	y := testutil.NewIdentity(t)

	rec := do(t, s, http.MethodPost, "/update", testKey, usersPayload{
		Allow: []string{x.String(), y.String(), "bogus"},
		Deny:  []string{strings.ToUpper(y.String())},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var upd updateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upd))
	assert.Equal(t, updateResponse{Allowed: 2, Denied: 1, Rejected: []string{"bogus"}}, upd)

	got, err := dir.Get(context.Background(), y)
	require.NoError(t, err)
	assert.Equal(t, types.Lookup{Known: true, Status: types.StatusDeny}, got)

	rec = do(t, s, http.MethodGet, "/users", testKey, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users usersPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Equal(t, []string{x.String()}, users.Allow)
	assert.Equal(t, []string{y.String()}, users.Deny)
}

func TestListEmpty(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/users", testKey, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"allow":[],"deny":[]}`, rec.Body.String())
}

func TestAuthRejectsBeforeDirectoryAccess(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		method  string
		path    string
		key     string
		message string
	}{
		{"update without key", http.MethodPost, "/update", "", msgNoKey},
		{"update with wrong key", http.MethodPost, "/update", "wrong", msgInvalidKey},
		{"users without key", http.MethodGet, "/users", "", msgNoKey},
		{"users with wrong key", http.MethodGet, "/users", testKey + "x", msgInvalidKey},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, dir := newTestServer(t)
			x := testutil.NewIdentity(t)
			rec := do(t, s, tt.method, tt.path, tt.key, usersPayload{Allow: []string{x.String()}})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, rec.Body.String())

			snap, err := dir.Snapshot(context.Background())
			require.NoError(t, err)
			assert.Empty(t, snap.Allow)
		})
	}
}

func TestEmptyConfiguredKeyRefusesAll(t *testing.T) {
	t.Parallel()
	s := New(newDirectory(t), "", WithLogger(logging.Discard()))
	rec := do(t, s, http.MethodGet, "/users", "anything", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateInvalidBody(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/update", strings.NewReader("{not json"))
	req.Header.Set(HeaderAPIKey, testKey)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStorageFailure(t *testing.T) {
	t.Parallel()
	s, dir := newTestServer(t)
	require.NoError(t, dir.Close())
	rec := do(t, s, http.MethodPost, "/update", testKey, usersPayload{
		Allow: []string{testutil.NewIdentity(t).String()},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
