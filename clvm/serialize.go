// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package clvm

import (
	"errors"
	"fmt"
)

const (
	consToken          = 0xff
	backReferenceToken = 0xfe
	nilToken           = 0x80

	// An atom longer than this can never appear in a condition output.
	maxAtomLen = 1 << 20

	// Guards the recursive decoder against adversarial nesting.
	maxDepth = 1 << 10
)

var (
	ErrTruncated        = errors.New("truncated serialized object")
	ErrTrailingBytes    = errors.New("trailing bytes after serialized object")
	errBackReference    = errors.New("back references are not supported")
	errAtomTooLong      = errors.New("atom exceeds maximum length")
	errInvalidSizeByte  = errors.New("invalid atom size header")
	errTooDeep          = errors.New("object nesting too deep")
	errEncodeAtomLength = errors.New("atom too long to encode")
)

// FromBytes deserializes [b] into an object tree. The entire input must be
// consumed.
func FromBytes(b []byte) (*SExp, error) {
	r := &reader{buf: b}
	s, err := r.readSExp(0)
	if err != nil {
		return nil, err
	}
	if r.off != len(b) {
		return nil, fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingBytes, r.off, len(b))
	}
	return s, nil
}

type reader struct {
	buf []byte
	off int
}

func (r *reader) readByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, ErrTruncated
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if r.off+n > len(r.buf) {
		return nil, ErrTruncated
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) readSExp(depth int) (*SExp, error) {
	if depth > maxDepth {
		return nil, errTooDeep
	}

	prefix, err := r.readByte()
	if err != nil {
		return nil, err
	}

	switch {
	case prefix == consToken:
		first, err := r.readSExp(depth + 1)
		if err != nil {
			return nil, err
		}
		rest, err := r.readSExp(depth + 1)
		if err != nil {
			return nil, err
		}
		return Cons(first, rest), nil
	case prefix == backReferenceToken:
		return nil, errBackReference
	case prefix < nilToken:
		// A single-byte atom encodes itself.
		return NewAtom([]byte{prefix}), nil
	case prefix == nilToken:
		return Nil(), nil
	default:
		size, err := r.readAtomSize(prefix)
		if err != nil {
			return nil, err
		}
		atom, err := r.readBytes(size)
		if err != nil {
			return nil, err
		}
		return NewAtom(atom), nil
	}
}

// readAtomSize decodes the atom length from [prefix] and any extension bytes.
// The number of leading one bits in the prefix selects the width of the size
// field.
func (r *reader) readAtomSize(prefix byte) (int, error) {
	var (
		extraBytes int
		size       uint64
	)
	switch {
	case prefix&0xc0 == 0x80: // 10xxxxxx
		extraBytes, size = 0, uint64(prefix&0x3f)
	case prefix&0xe0 == 0xc0: // 110xxxxx
		extraBytes, size = 1, uint64(prefix&0x1f)
	case prefix&0xf0 == 0xe0: // 1110xxxx
		extraBytes, size = 2, uint64(prefix&0x0f)
	case prefix&0xf8 == 0xf0: // 11110xxx
		extraBytes, size = 3, uint64(prefix&0x07)
	case prefix&0xfc == 0xf8: // 111110xx
		extraBytes, size = 4, uint64(prefix&0x03)
	default:
		return 0, errInvalidSizeByte
	}

	for i := 0; i < extraBytes; i++ {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		size = size<<8 | uint64(b)
	}
	if size > maxAtomLen {
		return 0, errAtomTooLong
	}
	return int(size), nil
}

// Bytes serializes this object tree. It is the inverse of FromBytes.
func (s *SExp) Bytes() ([]byte, error) {
	return s.appendTo(nil)
}

func (s *SExp) appendTo(buf []byte) ([]byte, error) {
	if s.IsPair() {
		buf = append(buf, consToken)
		withFirst, err := s.First.appendTo(buf)
		if err != nil {
			return nil, err
		}
		return s.Rest.appendTo(withFirst)
	}

	atom := s.Atom
	size := uint64(len(atom))
	switch {
	case size == 0:
		return append(buf, nilToken), nil
	case size == 1 && atom[0] < nilToken:
		return append(buf, atom[0]), nil
	case size < 0x40:
		buf = append(buf, 0x80|byte(size))
	case size < 0x2000:
		buf = append(buf, 0xc0|byte(size>>8), byte(size))
	case size < 0x100000:
		buf = append(buf, 0xe0|byte(size>>16), byte(size>>8), byte(size))
	case size < 0x8000000:
		buf = append(buf, 0xf0|byte(size>>24), byte(size>>16), byte(size>>8), byte(size))
	default:
		return nil, errEncodeAtomLength
	}
	return append(buf, atom...), nil
}
