// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"crypto/rand"
	"errors"
	"math/big"

	blst "github.com/supranational/blst/bindings/go"
)

const SecretKeyLen = blst.BLST_SCALAR_BYTES

var (
	errFailedSecretKeyDeserialize = errors.New("couldn't deserialize secret key")
	errInvalidSecretExponent      = errors.New("invalid secret exponent")

	// Message-augmentation ciphersuite: every signed payload is the signer's
	// compressed public key followed by the message, so two keys can never be
	// tricked into producing colliding payloads.
	ciphersuite = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_AUG_")
)

type SecretKey = blst.SecretKey

// NewSecretKey generates a new random secret key.
func NewSecretKey() (*SecretKey, error) {
	var ikm [32]byte
	_, err := rand.Read(ikm[:])
	return blst.KeyGen(ikm[:]), err
}

// SecretKeyFromBytes parses the big-endian scalar in [skBytes]. The scalar
// must be non-zero and below the group order.
func SecretKeyFromBytes(skBytes []byte) (*SecretKey, error) {
	sk := new(SecretKey).Deserialize(skBytes)
	if sk == nil {
		return nil, errFailedSecretKeyDeserialize
	}
	return sk, nil
}

// SecretKeyFromExponent converts a raw secret exponent, as handed over by an
// external key-management component, into a secret key.
func SecretKeyFromExponent(exponent *big.Int) (*SecretKey, error) {
	if exponent.Sign() <= 0 || exponent.BitLen() > 8*SecretKeyLen {
		return nil, errInvalidSecretExponent
	}
	skBytes := make([]byte, SecretKeyLen)
	exponent.FillBytes(skBytes)
	return SecretKeyFromBytes(skBytes)
}

func SecretKeyToBytes(sk *SecretKey) []byte {
	return sk.Serialize()
}

func PublicFromSecretKey(sk *SecretKey) *PublicKey {
	return new(PublicKey).From(sk)
}

// Sign [msg] under [sk]. The signature commits to the signer's public key via
// message augmentation.
func Sign(sk *SecretKey, msg []byte) *Signature {
	pk := PublicFromSecretKey(sk)
	return new(Signature).Sign(sk, augmentedMessage(pk, msg), ciphersuite)
}

// augmentedMessage prepends the compressed public key to [msg], per the AUG
// ciphersuite.
func augmentedMessage(pk *PublicKey, msg []byte) []byte {
	pkBytes := pk.Compress()
	payload := make([]byte, 0, len(pkBytes)+len(msg))
	payload = append(payload, pkBytes...)
	return append(payload, msg...)
}
