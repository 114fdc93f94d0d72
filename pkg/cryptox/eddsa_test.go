package cryptox

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSigningKey(t *testing.T) {
	key, err := NewSigningKey()
	require.NoError(t, err)
	require.Len(t, key, ed25519.PrivateKeySize)

	msg := []byte("taskify session")
	sig := ed25519.Sign(key, msg)
	require.True(t, ed25519.Verify(key.Public().(ed25519.PublicKey), msg, sig))

	other, err := NewSigningKey()
	require.NoError(t, err)
	require.NotEqual(t, key, other)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestNewSigningKeyEntropy(t *testing.T) {
	_, err := newSigningKey(failingReader{})
	require.ErrorContains(t, err, "no entropy")

	// a fixed seed gives a fixed key
	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	a, err := newSigningKey(bytes.NewReader(seed))
	require.NoError(t, err)
	require.Equal(t, ed25519.NewKeyFromSeed(seed), a)
}
