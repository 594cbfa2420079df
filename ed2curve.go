// Package ed2curve converts [Ed25519] key material into [X25519] key material.
//
// Ed25519 and X25519 are built on birationally equivalent forms of the same
// curve, twisted Edwards and Montgomery respectively, so a single long-term
// key pair can serve both for signatures and for Diffie-Hellman key agreement:
//
//   - [PublicKey] maps the Edwards y-coordinate to the Montgomery u-coordinate, u = (1+y)/(1-y).
//   - [PrivateKey] derives the X25519 scalar the same way Ed25519 derives its signing scalar.
//   - [Signature] moves the Ed25519 public key sign bit into the signature as in [XEdDSA],
//     so that a verifier holding only the X25519 public key can recover the Edwards point
//     with [SplitSignature].
//
// The conversions do not validate their inputs: non-canonical encodings and
// points that are not on the curve are converted as opaque 32-byte strings.
// The Edwards identity (y = 1) converts to the all-zero X25519 public key.
//
// [Ed25519]: https://www.rfc-editor.org/rfc/rfc8032.html
// [X25519]: https://www.rfc-editor.org/rfc/rfc7748.html
// [XEdDSA]: https://signal.org/docs/specifications/xeddsa/
package ed2curve

import (
	"crypto/ecdh"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/AlexanderYastrebov/ed2curve/field"
	"github.com/AlexanderYastrebov/ed2curve/internal/sha512"
)

const (
	// PublicKeySize is the size, in bytes, of Ed25519 and X25519 public keys.
	PublicKeySize = 32
	// SeedSize is the size, in bytes, of Ed25519 private key seeds.
	SeedSize = 32
	// PrivateKeySize is the size, in bytes, of X25519 private keys.
	PrivateKeySize = 32
	// SignatureSize is the size, in bytes, of Ed25519 and XEdDSA signatures.
	SignatureSize = 64
)

var (
	ErrInvalidPublicKeyLength  = errors.New("ed2curve: invalid public key length")
	ErrInvalidPrivateKeyLength = errors.New("ed2curve: invalid private key length")
	ErrInvalidSignatureLength  = errors.New("ed2curve: invalid signature length")
)

// PublicKey converts a compressed Ed25519 public key into the X25519 public key
// that [PrivateKey] yields for the same seed.
//
// The sign bit of pk is ignored because the u-coordinate does not depend on the sign of x.
func PublicKey(pk [PublicKeySize]byte) [PublicKeySize]byte {
	var u field.Element
	montgomeryFromEdwardsY(&u, fieldElementFromBytes(pk[:]))

	var out [PublicKeySize]byte
	u.FillBytes(out[:])
	return out
}

// PrivateKey converts an Ed25519 private key seed into an X25519 private key.
//
// The result is the clamped first half of SHA-512(seed), i.e. the Ed25519 signing scalar.
func PrivateKey(seed [SeedSize]byte) [PrivateKeySize]byte {
	h := sha512.Sum512(seed[:])

	var out [PrivateKeySize]byte
	copy(out[:], h[:PrivateKeySize])
	return *clamp(&out)
}

// Signature converts an Ed25519 signature made with pk into an XEdDSA signature
// by storing the sign bit of pk in the top bit of the signature, which is always
// zero in a valid Ed25519 signature.
//
// Signature does not verify sig. Applying it twice is the same as applying it once.
func Signature(pk [PublicKeySize]byte, sig [SignatureSize]byte) [SignatureSize]byte {
	sig[SignatureSize-1] |= pk[PublicKeySize-1] & signMask
	return sig
}

// Ed25519PublicKey converts an X25519 public key back into a compressed Ed25519
// public key, y = (u-1)/(u+1), with signBit (0 or 1) as the sign of x.
//
// The top bit of u is ignored. u = -1 has no Edwards counterpart and converts to y = 0.
func Ed25519PublicKey(u [PublicKeySize]byte, signBit byte) [PublicKeySize]byte {
	var y field.Element
	edwardsYFromMontgomery(&y, fieldElementFromBytes(u[:]))

	var out [PublicKeySize]byte
	y.FillBytes(out[:])
	out[PublicKeySize-1] |= (signBit & 1) << 7
	return out
}

// SplitSignature reverses [Signature]: it recovers the Ed25519 public key from the
// X25519 public key u and the sign bit carried by sig, and returns it together with
// sig with that bit cleared, ready for Ed25519 verification.
func SplitSignature(u [PublicKeySize]byte, sig [SignatureSize]byte) (pk [PublicKeySize]byte, edSig [SignatureSize]byte) {
	signBit := sig[SignatureSize-1] >> 7
	sig[SignatureSize-1] &^= signMask
	return Ed25519PublicKey(u, signBit), sig
}

// PublicKeyFromEd25519 is like [PublicKey] but accepts a [crypto/ed25519] public key.
func PublicKeyFromEd25519(pk ed25519.PublicKey) ([]byte, error) {
	if len(pk) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPublicKeyLength, len(pk))
	}
	u := PublicKey([PublicKeySize]byte(pk))
	return u[:], nil
}

// PrivateKeyFromEd25519 is like [PrivateKey] but accepts a [crypto/ed25519] private key
// and converts its seed.
func PrivateKeyFromEd25519(sk ed25519.PrivateKey) ([]byte, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrivateKeyLength, len(sk))
	}
	k := PrivateKey([SeedSize]byte(sk.Seed()))
	return k[:], nil
}

// SignatureFromEd25519 is like [Signature] but accepts slices.
func SignatureFromEd25519(pk ed25519.PublicKey, sig []byte) ([]byte, error) {
	if len(pk) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPublicKeyLength, len(pk))
	}
	if len(sig) != ed25519.SignatureSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSignatureLength, len(sig))
	}
	s := Signature([PublicKeySize]byte(pk), [SignatureSize]byte(sig))
	return s[:], nil
}

// ECDHPublicKey converts pk into a [crypto/ecdh] X25519 public key.
func ECDHPublicKey(pk ed25519.PublicKey) (*ecdh.PublicKey, error) {
	u, err := PublicKeyFromEd25519(pk)
	if err != nil {
		return nil, err
	}
	return ecdh.X25519().NewPublicKey(u)
}

// ECDHPrivateKey converts sk into a [crypto/ecdh] X25519 private key whose
// public key equals [ECDHPublicKey] of sk's public key.
func ECDHPrivateKey(sk ed25519.PrivateKey) (*ecdh.PrivateKey, error) {
	k, err := PrivateKeyFromEd25519(sk)
	if err != nil {
		return nil, err
	}
	return ecdh.X25519().NewPrivateKey(k)
}
