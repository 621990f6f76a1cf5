// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import "github.com/prayogimhd/chia-blockchain/ids"

// Config carries the network parameters the authorization pipeline needs.
type Config struct {
	// AggSigMeAdditionalData domain-separates coin-bound signatures per
	// network, so a signature produced for one chain can never authorize a
	// spend on another. Consensus derives it from the genesis challenge.
	AggSigMeAdditionalData ids.ID
}

var (
	MainnetConfig = Config{
		AggSigMeAdditionalData: ids.ID{
			0xcc, 0xd5, 0xbb, 0x71, 0x18, 0x35, 0x32, 0xbf,
			0xf2, 0x20, 0xba, 0x46, 0xc2, 0x68, 0x99, 0x1a,
			0x3f, 0xf0, 0x7e, 0xb3, 0x58, 0xe8, 0x25, 0x5a,
			0x65, 0xc3, 0x0a, 0x2d, 0xce, 0x0e, 0x5f, 0xbb,
		},
	}

	TestnetConfig = Config{
		AggSigMeAdditionalData: ids.ID{
			0xae, 0x83, 0x52, 0x5b, 0xa8, 0xd1, 0xdd, 0x3f,
			0x09, 0xb2, 0x77, 0xde, 0x18, 0xca, 0x3e, 0x43,
			0xfc, 0x0a, 0xf2, 0x0d, 0x20, 0xc4, 0xb3, 0xe9,
			0x2e, 0xf2, 0xa4, 0x8b, 0xd2, 0x91, 0xcc, 0xb2,
		},
	}
)
