// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package conditions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prayogimhd/chia-blockchain/crypto/bls"
	"github.com/prayogimhd/chia-blockchain/ids"
	"github.com/prayogimhd/chia-blockchain/utils"
	"github.com/prayogimhd/chia-blockchain/utils/hashing"
)

func TestDeriveObligations(t *testing.T) {
	require := require.New(t)

	pkUnsafe := testPublicKeyBytes(t)
	pkMe := testPublicKeyBytes(t)
	coinID := ids.ID{'c', 'o', 'i', 'n'}
	additionalData := utils.RandomBytes(32)

	program := conditionsProgram(t,
		conditionSExp(AggSigMe, pkMe, []byte("bound")),
		conditionSExp(CreateCoin, utils.RandomBytes(32), []byte{0x64}),
		conditionSExp(AggSigUnsafe, pkUnsafe, []byte("verbatim")),
	)
	dict, err := ParseConditions(program)
	require.NoError(err)

	obligations, err := DeriveObligations(dict, coinID, additionalData)
	require.NoError(err)
	require.Len(obligations, 2)

	// AGG_SIG_UNSAFE obligations come first and hash the message verbatim.
	require.Equal(pkUnsafe, bls.PublicKeyToBytes(obligations[0].PublicKey))
	require.Equal(
		ids.ID(hashing.ComputeHash256Array([]byte("verbatim"))),
		obligations[0].MessageHash,
	)

	// AGG_SIG_ME binds the message to the coin and network.
	boundPayload := append([]byte("bound"), coinID[:]...)
	boundPayload = append(boundPayload, additionalData...)
	require.Equal(pkMe, bls.PublicKeyToBytes(obligations[1].PublicKey))
	require.Equal(
		ids.ID(hashing.ComputeHash256Array(boundPayload)),
		obligations[1].MessageHash,
	)
}

func TestDeriveObligationsOrder(t *testing.T) {
	require := require.New(t)

	pk := testPublicKeyBytes(t)
	program := conditionsProgram(t,
		conditionSExp(AggSigMe, pk, []byte("me-1")),
		conditionSExp(AggSigMe, pk, []byte("me-2")),
		conditionSExp(AggSigMe, pk, []byte("me-3")),
	)
	dict, err := ParseConditions(program)
	require.NoError(err)

	coinID := ids.ID{1}
	additionalData := []byte("net")
	obligations, err := DeriveObligations(dict, coinID, additionalData)
	require.NoError(err)
	require.Len(obligations, 3)

	for i, msg := range []string{"me-1", "me-2", "me-3"} {
		payload := append([]byte(msg), coinID[:]...)
		payload = append(payload, additionalData...)
		require.Equal(ids.ID(hashing.ComputeHash256Array(payload)), obligations[i].MessageHash)
	}
}

func TestDeriveObligationsNoSignatureConditions(t *testing.T) {
	require := require.New(t)

	program := conditionsProgram(t,
		conditionSExp(CreateCoin, utils.RandomBytes(32), []byte{0x64}),
		conditionSExp(ReserveFee, []byte{0x0a}),
	)
	dict, err := ParseConditions(program)
	require.NoError(err)

	obligations, err := DeriveObligations(dict, ids.Empty, nil)
	require.NoError(err)
	require.Empty(obligations)
}

func TestDeriveObligationsInvalidPublicKey(t *testing.T) {
	require := require.New(t)

	// 48 bytes that aren't a valid group element pass the parser's length
	// check but fail obligation derivation.
	program := conditionsProgram(t, conditionSExp(AggSigUnsafe, make([]byte, bls.PublicKeyLen), []byte("msg")))
	dict, err := ParseConditions(program)
	require.NoError(err)

	_, err = DeriveObligations(dict, ids.Empty, nil)
	require.ErrorIs(err, ErrConditionParse)
}
