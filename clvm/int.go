// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package clvm

import "errors"

var (
	errNegativeInt = errors.New("negative integer")
	errIntTooLarge = errors.New("integer out of range")
)

// IntToBytes returns the minimal-length big-endian two's-complement encoding
// of [v]: no redundant leading zeroes, a zero byte prepended when the high
// bit would otherwise flag the value negative, and the empty atom for zero.
func IntToBytes(v uint64) []byte {
	if v == 0 {
		return []byte{}
	}
	b := make([]byte, 0, 9)
	for shift := 56; shift >= 0; shift -= 8 {
		octet := byte(v >> shift)
		if len(b) == 0 && octet == 0 {
			continue
		}
		b = append(b, octet)
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0}, b...)
	}
	return b
}

// Uint64FromBytes decodes a big-endian two's-complement atom into a uint64,
// rejecting negative values and values that don't fit.
func Uint64FromBytes(b []byte) (uint64, error) {
	if len(b) > 0 && b[0]&0x80 != 0 {
		return 0, errNegativeInt
	}
	// Redundant leading zeroes are tolerated, as the original conditions
	// parser tolerates (and strips) them.
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > 8 {
		return 0, errIntTooLarge
	}
	var v uint64
	for _, octet := range b {
		v = v<<8 | uint64(octet)
	}
	return v, nil
}
