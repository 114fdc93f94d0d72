package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSubject is returned for a session token that does not name a user.
var ErrNoSubject = errors.New("jwtx: token has no subject")

// EdDSASigner signs session tokens with one in-memory Ed25519 key.
type EdDSASigner struct {
	kid string
	key ed25519.PrivateKey
}

func newEdDSASigner(kid string, key ed25519.PrivateKey) (*EdDSASigner, error) {
	if kid == "" {
		return nil, errors.New("jwtx: signer needs a key id")
	}
	s := &EdDSASigner{kid: kid, key: key}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *EdDSASigner) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (s *EdDSASigner) KID() string { return s.kid }

// Sign refuses claims without a subject: every Taskify token stands for a
// user, and the authn middleware trusts sub as the caller's id.
func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	if claims.Subject == "" {
		return "", ErrNoSubject
	}
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign with %s: %w", s.kid, err)
	}
	return signed, nil
}

// PublicJWK is the verification half, registered in the process KeySet.
func (s *EdDSASigner) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, "sig", s.Alg(), s.key.Public().(ed25519.PublicKey))
}

func (s *EdDSASigner) Validate() error {
	if len(s.key) != ed25519.PrivateKeySize {
		return fmt.Errorf("jwtx: Ed25519 key for %q has %d bytes, want %d", s.kid, len(s.key), ed25519.PrivateKeySize)
	}
	return nil
}
