package jwtx

import "crypto/ed25519"

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
	Validate() error
}

// NewSignerEdDSA wraps an in-memory Ed25519 key.
func NewSignerEdDSA(kid string, key ed25519.PrivateKey) (Signer, error) {
	return newEdDSASigner(kid, key)
}
