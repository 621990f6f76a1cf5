// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/prayogimhd/chia-blockchain/conditions"
	"github.com/prayogimhd/chia-blockchain/crypto/bls"
	"github.com/prayogimhd/chia-blockchain/ids"
	"github.com/prayogimhd/chia-blockchain/utils/hashing"
)

func newSecretKeys(require *require.Assertions, count int) []*bls.SecretKey {
	secrets := make([]*bls.SecretKey, count)
	for i := range secrets {
		sk, err := bls.NewSecretKey()
		require.NoError(err)
		secrets[i] = sk
	}
	return secrets
}

func populatedKeychain(require *require.Assertions, secrets []*bls.SecretKey) *Keychain {
	kc := New()
	require.NoError(kc.Populate(secrets))
	return kc
}

func TestPopulate(t *testing.T) {
	require := require.New(t)

	secrets := newSecretKeys(require, 3)
	kc := populatedKeychain(require, secrets)
	require.Equal(3, kc.Len())

	for _, sk := range secrets {
		pkBytes := PublicKeyBytes(bls.PublicKeyToBytes(bls.PublicFromSecretKey(sk)))
		require.True(kc.PublicKeys().Contains(pkBytes))
	}

	// Re-populating the same secrets is a no-op.
	require.NoError(kc.Populate(secrets))
	require.Equal(3, kc.Len())
}

func TestPopulateOneEntryPerDistinctKey(t *testing.T) {
	require := require.New(t)

	sk, err := bls.NewSecretKey()
	require.NoError(err)

	// The same secret listed twice still yields one entry.
	kc := populatedKeychain(require, []*bls.SecretKey{sk, sk})
	require.Equal(1, kc.Len())
}

func TestSignAndVerify(t *testing.T) {
	require := require.New(t)

	secrets := newSecretKeys(require, 2)
	kc := populatedKeychain(require, secrets)

	for _, sk := range secrets {
		pk := bls.PublicFromSecretKey(sk)
		messageHash := ids.ID(hashing.ComputeHash256Array([]byte("spend please")))

		sig, err := kc.Sign(pk, messageHash)
		require.NoError(err)
		require.True(bls.Verify(pk, sig, messageHash[:]))
	}
}

func TestSignUnknownKey(t *testing.T) {
	require := require.New(t)

	kc := populatedKeychain(require, newSecretKeys(require, 2))
	before := kc.PublicKeys()

	strangerSk, err := bls.NewSecretKey()
	require.NoError(err)

	_, err = kc.Sign(bls.PublicFromSecretKey(strangerSk), ids.ID{1})
	require.ErrorIs(err, ErrUnknownKey)

	// Failure leaves the keychain untouched.
	require.True(before.Equals(kc.PublicKeys()))
}

func TestSignObligationsAllOrNothing(t *testing.T) {
	require := require.New(t)

	held, err := bls.NewSecretKey()
	require.NoError(err)
	stranger, err := bls.NewSecretKey()
	require.NoError(err)

	kc := populatedKeychain(require, []*bls.SecretKey{held})
	before := kc.PublicKeys()

	obligations := []conditions.SignObligation{
		{PublicKey: bls.PublicFromSecretKey(held), MessageHash: ids.ID{1}},
		{PublicKey: bls.PublicFromSecretKey(stranger), MessageHash: ids.ID{2}},
	}

	sig, err := kc.SignObligations(obligations)
	require.ErrorIs(err, ErrUnknownKey)
	require.Nil(sig)
	require.True(before.Equals(kc.PublicKeys()))
}

func TestSignObligationsEmpty(t *testing.T) {
	require := require.New(t)

	kc := populatedKeychain(require, newSecretKeys(require, 1))

	sig, err := kc.SignObligations(nil)
	require.NoError(err)
	require.True(bls.IsSignatureIdentity(sig))
}

func TestSignObligationsSingle(t *testing.T) {
	require := require.New(t)

	// The documented wallet scenario: secret exponent 5 signing one message.
	sk, err := bls.SecretKeyFromExponent(big.NewInt(5))
	require.NoError(err)
	pk := bls.PublicFromSecretKey(sk)

	kc := populatedKeychain(require, []*bls.SecretKey{sk})

	messageHash := ids.ID(hashing.ComputeHash256Array([]byte("test-message")))
	agg, err := kc.SignObligations([]conditions.SignObligation{
		{PublicKey: pk, MessageHash: messageHash},
	})
	require.NoError(err)

	// The aggregate of one signature is that signature.
	single, err := kc.Sign(pk, messageHash)
	require.NoError(err)
	require.Equal(bls.SignatureToBytes(single), bls.SignatureToBytes(agg))
}

func TestKeyCollision(t *testing.T) {
	require := require.New(t)

	sk0, err := bls.SecretKeyFromExponent(big.NewInt(5))
	require.NoError(err)
	sk1, err := bls.SecretKeyFromExponent(big.NewInt(7))
	require.NoError(err)

	kc := populatedKeychain(require, []*bls.SecretKey{sk0})

	// Force a collision by registering sk1's material under sk0's public key.
	pkBytes := PublicKeyBytes(bls.PublicKeyToBytes(bls.PublicFromSecretKey(sk0)))
	kc.keys[pkBytes] = sk1

	err = kc.Populate([]*bls.SecretKey{sk0})
	require.ErrorIs(err, ErrKeyCollision)
	require.Equal(1, kc.Len())
}

func TestSignObligationsPermutationInvariant(t *testing.T) {
	require := require.New(t)

	secrets := newSecretKeys(require, 4)
	kc := populatedKeychain(require, secrets)

	obligations := make([]conditions.SignObligation, len(secrets))
	for i, sk := range secrets {
		obligations[i] = conditions.SignObligation{
			PublicKey:   bls.PublicFromSecretKey(sk),
			MessageHash: ids.ID{byte(i)},
		}
	}

	expected, err := kc.SignObligations(obligations)
	require.NoError(err)
	expectedBytes := bls.SignatureToBytes(expected)

	properties := gopter.NewProperties(nil)
	properties.Property("aggregate signature is invariant under obligation order", prop.ForAll(
		func(seed int64) bool {
			shuffled := make([]conditions.SignObligation, len(obligations))
			copy(shuffled, obligations)
			rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			sig, err := kc.SignObligations(shuffled)
			if err != nil {
				return false
			}
			return string(bls.SignatureToBytes(sig)) == string(expectedBytes)
		},
		gen.Int64(),
	))
	properties.TestingRun(t)
}
