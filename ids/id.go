// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/prayogimhd/chia-blockchain/utils/formatting"
	"github.com/prayogimhd/chia-blockchain/utils/hashing"
)

const IDLen = hashing.HashLen

// Empty is a useful all zero value.
var Empty = ID{}

// ID wraps a 32 byte hash used as an identifier: coin ids, puzzle hashes and
// signing message hashes.
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an id.
func ToID(b []byte) (ID, error) {
	hash, err := hashing.ToHash256(b)
	return ID(hash), err
}

// FromString is the inverse of ID.String().
func FromString(idStr string) (ID, error) {
	b, err := formatting.DecodeCB58(idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(b)
}

// FromHex is the inverse of ID.Hex().
func FromHex(idStr string) (ID, error) {
	b, err := hex.DecodeString(idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(b)
}

func (id ID) MarshalJSON() ([]byte, error) {
	str, err := formatting.EncodeCB58(id[:])
	if err != nil {
		return nil, err
	}
	return []byte(`"` + str + `"`), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return fmt.Errorf("expected string for id but got %s", str)
	}
	newID, err := FromString(str[1 : len(str)-1])
	if err != nil {
		return err
	}
	*id = newID
	return nil
}

// Bytes returns the 32 byte hash as a slice. It is assumed this slice is not
// modified.
func (id ID) Bytes() []byte {
	return id[:]
}

// Hex returns a hex encoded string of this id.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	// We assume that the maximum size of a byte slice that
	// can be cb58 encoded is at least the length of an ID.
	str, _ := formatting.EncodeCB58(id[:])
	return str
}

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}
