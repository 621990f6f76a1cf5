// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/prayogimhd/chia-blockchain/crypto/bls"
)

// CoinSpend describes how one coin is spent. Solution is the serialized
// output of running the coin's puzzle: the list of conditions the spend
// declares. Evaluating the puzzle itself is owned by the transaction-building
// component; this engine only decodes the declared conditions.
type CoinSpend struct {
	Coin         Coin   `json:"coin"`
	PuzzleReveal []byte `json:"puzzleReveal"`
	Solution     []byte `json:"solution"`
}

// SpendBundle is the artifact handed to a full node for broadcast: a set of
// coin spends authorized by one aggregated signature. The node recomputes the
// expected aggregate public key from the declared conditions and verifies
// AggregatedSignature against it.
type SpendBundle struct {
	CoinSpends          []*CoinSpend
	AggregatedSignature *bls.Signature
}

// AggregatedSignatureBytes returns the bundle's signature in the scheme's
// compact form, or the identity encoding when no signature is attached.
func (sb *SpendBundle) AggregatedSignatureBytes() []byte {
	if sb.AggregatedSignature == nil {
		return bls.SignatureToBytes(bls.SignatureIdentity())
	}
	return bls.SignatureToBytes(sb.AggregatedSignature)
}
