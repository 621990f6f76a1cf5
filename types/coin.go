// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types holds the chain-facing value types the authorization engine
// consumes and produces.
package types

import (
	"github.com/prayogimhd/chia-blockchain/clvm"
	"github.com/prayogimhd/chia-blockchain/ids"
	"github.com/prayogimhd/chia-blockchain/utils/hashing"
)

// Coin is an unspent output: the hash of the puzzle that locks it, the coin
// that created it, and its value in mojos.
type Coin struct {
	ParentCoinInfo ids.ID `json:"parentCoinInfo"`
	PuzzleHash     ids.ID `json:"puzzleHash"`
	Amount         uint64 `json:"amount"`
}

// ID returns the coin's canonical name: the hash of its parent, puzzle hash
// and minimally-encoded amount. Coin-bound signature obligations commit to
// this value.
func (c *Coin) ID() ids.ID {
	amount := clvm.IntToBytes(c.Amount)
	preimage := make([]byte, 0, 2*ids.IDLen+len(amount))
	preimage = append(preimage, c.ParentCoinInfo[:]...)
	preimage = append(preimage, c.PuzzleHash[:]...)
	preimage = append(preimage, amount...)
	return ids.ID(hashing.ComputeHash256Array(preimage))
}
