// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"github.com/prayogimhd/chia-blockchain/utils/hashing"
)

const (
	checksumLen = 4

	// maximum length byte slice can be marshalled to a string. Must be longer
	// than the length of a BLS public key and a BLS signature.
	maxCB58EncodeSize = 16 * 1024 // 16 KB
)

var (
	ErrEncodingOverflow = errors.New("encoding overflow")
	errMissingChecksum  = errors.New("input string is smaller than the checksum size")
	errBadChecksum      = errors.New("invalid input checksum")
)

// EncodeCB58 returns [b] in checksummed base-58 encoding.
func EncodeCB58(b []byte) (string, error) {
	if len(b) > maxCB58EncodeSize {
		return "", fmt.Errorf("%w: byte slice length (%d) > maximum for cb58 (%d)", ErrEncodingOverflow, len(b), maxCB58EncodeSize)
	}
	checked := make([]byte, len(b)+checksumLen)
	copy(checked, b)
	copy(checked[len(b):], hashing.Checksum(b, checksumLen))
	return base58.Encode(checked), nil
}

// DecodeCB58 is the inverse of EncodeCB58.
func DecodeCB58(str string) ([]byte, error) {
	b, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}
	if len(b) < checksumLen {
		return nil, errMissingChecksum
	}

	rawBytes := b[:len(b)-checksumLen]
	checksum := b[len(b)-checksumLen:]

	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, errBadChecksum
	}
	return rawBytes, nil
}
