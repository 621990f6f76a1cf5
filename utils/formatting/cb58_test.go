// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeCB58(t *testing.T) {
	require := require.New(t)

	addr := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 255}
	result, err := EncodeCB58(addr)
	require.NoError(err)
	require.Equal("1NVSVezva3bAtJesnUj", result)

	zero, err := EncodeCB58([]byte{0})
	require.NoError(err)
	require.Equal("1c7hwa", zero)
}

func TestCB58RoundTrip(t *testing.T) {
	require := require.New(t)

	for _, b := range [][]byte{
		{},
		{0},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{255, 254, 253},
	} {
		str, err := EncodeCB58(b)
		require.NoError(err)
		decoded, err := DecodeCB58(str)
		require.NoError(err)
		require.Equal(b, decoded)
	}
}

func TestDecodeCB58BadChecksum(t *testing.T) {
	require := require.New(t)

	str, err := EncodeCB58([]byte{1, 2, 3})
	require.NoError(err)

	// Flip the last character to break the checksum.
	corrupted := []byte(str)
	if corrupted[len(corrupted)-1] == '2' {
		corrupted[len(corrupted)-1] = '3'
	} else {
		corrupted[len(corrupted)-1] = '2'
	}
	_, err = DecodeCB58(string(corrupted))
	require.Error(err)
}

func TestDecodeCB58MissingChecksum(t *testing.T) {
	require := require.New(t)

	_, err := DecodeCB58("1")
	require.ErrorIs(err, errMissingChecksum)
}
