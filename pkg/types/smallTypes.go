package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/nbd-wtf/go-nostr/nip19"
)

// IdentitySize is the byte length of an x-only secp256k1 public key.
const IdentitySize = 32

var ErrInvalidIdentity = errors.New("invalid identity")

// Identity is the public key of an event author.
type Identity [IdentitySize]byte

func (i Identity) String() string {
	return hex.EncodeToString(i[:])
}

func (i Identity) Bytes() []byte {
	return i[:]
}

// IdentityFromBytes copies a raw 32 byte key.
func IdentityFromBytes(b []byte) (Identity, error) { // A
	var id Identity
	if len(b) != IdentitySize {
		return id, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidIdentity,
			IdentitySize,
			len(b),
		)
	}
	copy(id[:], b)
	return id, nil
}

// ParseIdentity accepts 64 hex characters in any case or a NIP-19 npub.
// Surrounding whitespace is malformed.
func ParseIdentity(s string) (Identity, error) { // A
	if strings.HasPrefix(s, "npub1") {
		prefix, value, err := nip19.Decode(s)
		if err != nil {
			return Identity{}, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
		}
		hexKey, ok := value.(string)
		if prefix != "npub" || !ok {
			return Identity{}, fmt.Errorf(
				"%w: unexpected bech32 prefix %q",
				ErrInvalidIdentity,
				prefix,
			)
		}
		s = hexKey
	}
	if len(s) != IdentitySize*2 {
		return Identity{}, fmt.Errorf(
			"%w: expected %d hex characters, got %d",
			ErrInvalidIdentity,
			IdentitySize*2,
			len(s),
		)
	}
	raw, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}
	return IdentityFromBytes(raw)
}

// ParseIdentities parses every value it can. Malformed values are returned
// in rejected and never stop the rest of the batch.
func ParseIdentities(values []string) (ids []Identity, rejected []string) { // A
	ids = make([]Identity, 0, len(values))
	for _, v := range values {
		id, err := ParseIdentity(v)
		if err != nil {
			rejected = append(rejected, v)
			continue
		}
		ids = append(ids, id)
	}
	return ids, rejected
}

// IdentitySet is an unordered set of identities.
type IdentitySet map[Identity]struct{}

func NewIdentitySet(ids ...Identity) IdentitySet {
	s := make(IdentitySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IdentitySet) Add(id Identity) {
	s[id] = struct{}{}
}

func (s IdentitySet) Has(id Identity) bool {
	_, ok := s[id]
	return ok
}

// Strings returns the hex form of every member, sorted.
func (s IdentitySet) Strings() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id.String())
	}
	sortStrings(out)
	return out
}

// Clone returns an independent copy.
func (s IdentitySet) Clone() IdentitySet {
	c := make(IdentitySet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}
