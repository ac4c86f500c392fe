// Package encryption holds the service key pair: it signs list documents
// and encrypts their content to the service itself with NIP-04.
package encryption

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip04"
)

var ErrDecrypt = errors.New("decrypt list document")

// KeyPair is a secp256k1 key pair in hex form. Shared secrets are cached
// per peer.
type KeyPair struct {
	secret string
	public string

	mu      sync.Mutex
	secrets map[string][]byte
}

// NewKeyPair derives the public key from a hex secret key.
func NewKeyPair(secretHex string) (*KeyPair, error) { // A
	pub, err := nostr.GetPublicKey(secretHex)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	return &KeyPair{
		secret:  secretHex,
		public:  pub,
		secrets: make(map[string][]byte),
	}, nil
}

// PublicKey returns the hex public key.
func (k *KeyPair) PublicKey() string {
	return k.public
}

// Sign sets PubKey, ID and Sig on ev.
func (k *KeyPair) Sign(ev *nostr.Event) error {
	ev.PubKey = k.public
	if err := ev.Sign(k.secret); err != nil {
		return fmt.Errorf("sign event: %w", err)
	}
	return nil
}

func (k *KeyPair) sharedSecret(peer string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if s, ok := k.secrets[peer]; ok {
		return s, nil
	}
	s, err := nip04.ComputeSharedSecret(peer, k.secret)
	if err != nil {
		return nil, fmt.Errorf("shared secret with %s: %w", peer, err)
	}
	k.secrets[peer] = s
	return s, nil
}

// Encrypt encrypts plaintext for peer.
func (k *KeyPair) Encrypt(peer string, plaintext []byte) (string, error) { // A
	key, err := k.sharedSecret(peer)
	if err != nil {
		return "", err
	}
	ct, err := nip04.Encrypt(string(plaintext), key)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return ct, nil
}

// Decrypt reverses Encrypt for a message exchanged with peer.
func (k *KeyPair) Decrypt(peer string, ciphertext string) ([]byte, error) { // A
	key, err := k.sharedSecret(peer)
	if err != nil {
		return nil, err
	}
	pt, err := nip04.Decrypt(ciphertext, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return []byte(pt), nil
}

// Seal encrypts plaintext to the key pair itself.
func (k *KeyPair) Seal(plaintext []byte) (string, error) {
	return k.Encrypt(k.public, plaintext)
}
