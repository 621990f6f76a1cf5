// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package conditions

import (
	"fmt"

	"github.com/prayogimhd/chia-blockchain/crypto/bls"
	"github.com/prayogimhd/chia-blockchain/ids"
	"github.com/prayogimhd/chia-blockchain/utils/hashing"
)

// SignObligation names a public key that must sign a message hash for the
// spend to be authorized.
type SignObligation struct {
	PublicKey   *bls.PublicKey
	MessageHash ids.ID
}

// DeriveObligations extracts one obligation per signature-requiring condition
// in [dict]:
//
//   - AGG_SIG_UNSAFE binds the declared message verbatim:
//     hash = sha256(message)
//   - AGG_SIG_ME binds the message to the spent coin and network:
//     hash = sha256(message || coinID || additionalData)
//
// Obligations are emitted per opcode in declaration order. A spend with no
// signature-requiring conditions yields an empty list.
func DeriveObligations(dict Dict, coinID ids.ID, additionalData []byte) ([]SignObligation, error) {
	var obligations []SignObligation
	for _, op := range aggSigOpcodes {
		for _, condition := range dict[op] {
			pk, err := bls.PublicKeyFromBytes(condition.Args[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %s", ErrConditionParse, op, err)
			}

			message := condition.Args[1]
			var hash hashing.Hash256
			switch op {
			case AggSigMe:
				payload := make([]byte, 0, len(message)+ids.IDLen+len(additionalData))
				payload = append(payload, message...)
				payload = append(payload, coinID[:]...)
				payload = append(payload, additionalData...)
				hash = hashing.ComputeHash256Array(payload)
			default:
				hash = hashing.ComputeHash256Array(message)
			}

			obligations = append(obligations, SignObligation{
				PublicKey:   pk,
				MessageHash: ids.ID(hash),
			})
		}
	}
	return obligations, nil
}
