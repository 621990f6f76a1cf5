// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keychain owns the private key material a wallet session controls
// and performs signing on demand.
package keychain

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/prayogimhd/chia-blockchain/conditions"
	"github.com/prayogimhd/chia-blockchain/crypto/bls"
	"github.com/prayogimhd/chia-blockchain/ids"
	"github.com/prayogimhd/chia-blockchain/utils/set"
)

var (
	// ErrUnknownKey is returned when signing is requested under a public key
	// this keychain doesn't hold material for.
	ErrUnknownKey = errors.New("unknown public key")

	// ErrKeyCollision is returned when Populate is handed a secret whose
	// derived public key is already held with different material. Correct key
	// derivation can't produce this; treat it as a caller bug.
	ErrKeyCollision = errors.New("conflicting secret for public key")
)

// PublicKeyBytes is the compressed form of a public key, usable as a map key.
type PublicKeyBytes [bls.PublicKeyLen]byte

// Keychain maps public keys to the secrets that derived them. It is created
// once per wallet session, populated from externally supplied secrets, and
// discarded on session teardown.
//
// Population takes the write lock; once population has quiesced, any number
// of signing requests may run concurrently.
type Keychain struct {
	lock sync.RWMutex
	keys map[PublicKeyBytes]*bls.SecretKey
}

func New() *Keychain {
	return &Keychain{
		keys: make(map[PublicKeyBytes]*bls.SecretKey),
	}
}

// Populate derives the public key of each secret and stores the pair.
// Re-adding a secret already held is a no-op; a different secret deriving an
// already-held public key fails with ErrKeyCollision and leaves the keychain
// unchanged.
func (kc *Keychain) Populate(secrets []*bls.SecretKey) error {
	kc.lock.Lock()
	defer kc.lock.Unlock()

	// Validate the whole batch before inserting anything, so a failed
	// Populate never applies partially.
	entries := make(map[PublicKeyBytes]*bls.SecretKey, len(secrets))
	for _, secret := range secrets {
		pkBytes := PublicKeyBytes(bls.PublicKeyToBytes(bls.PublicFromSecretKey(secret)))
		if held, ok := kc.keys[pkBytes]; ok {
			if !bytes.Equal(bls.SecretKeyToBytes(held), bls.SecretKeyToBytes(secret)) {
				return fmt.Errorf("%w: %x", ErrKeyCollision, pkBytes)
			}
			continue
		}
		if staged, ok := entries[pkBytes]; ok {
			if !bytes.Equal(bls.SecretKeyToBytes(staged), bls.SecretKeyToBytes(secret)) {
				return fmt.Errorf("%w: %x", ErrKeyCollision, pkBytes)
			}
			continue
		}
		entries[pkBytes] = secret
	}

	for pkBytes, secret := range entries {
		kc.keys[pkBytes] = secret
	}
	return nil
}

// Sign produces the signature of [messageHash] under [publicKey], or
// ErrUnknownKey if this keychain doesn't hold the key. Failure has no side
// effects.
func (kc *Keychain) Sign(publicKey *bls.PublicKey, messageHash ids.ID) (*bls.Signature, error) {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	pkBytes := PublicKeyBytes(bls.PublicKeyToBytes(publicKey))
	secret, ok := kc.keys[pkBytes]
	if !ok {
		return nil, fmt.Errorf("%w: %x", ErrUnknownKey, pkBytes)
	}
	return bls.Sign(secret, messageHash[:]), nil
}

// SignObligations signs every obligation in order and aggregates the results.
// If any key is missing the whole operation fails and no signature material
// is returned: an incomplete authorization set must never look like a valid
// one.
func (kc *Keychain) SignObligations(obligations []conditions.SignObligation) (*bls.Signature, error) {
	signatures := make([]*bls.Signature, 0, len(obligations))
	for _, obligation := range obligations {
		signature, err := kc.Sign(obligation.PublicKey, obligation.MessageHash)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, signature)
	}
	return bls.AggregateSignatures(signatures)
}

// PublicKeys returns the set of compressed public keys this keychain holds.
func (kc *Keychain) PublicKeys() set.Set[PublicKeyBytes] {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	pks := set.Of[PublicKeyBytes]()
	for pkBytes := range kc.keys {
		pks.Add(pkBytes)
	}
	return pks
}

// Len returns the number of keys held.
func (kc *Keychain) Len() int {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	return len(kc.keys)
}
