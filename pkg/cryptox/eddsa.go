package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
)

// NewSigningKey returns a fresh Ed25519 key for session tokens. Taskify never
// writes signing keys anywhere, so the key stays in its raw form rather than
// going through PEM.
func NewSigningKey() (ed25519.PrivateKey, error) {
	return newSigningKey(rand.Reader)
}

func newSigningKey(entropy io.Reader) (ed25519.PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(entropy)
	if err != nil {
		return nil, fmt.Errorf("cryptox: generate signing key: %w", err)
	}
	return key, nil
}
