// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package clvm decodes the serialized object format used by puzzle programs
// and their outputs. Only the object structure is handled here; evaluation of
// puzzles is owned by the node.
package clvm

import "errors"

var errImproperList = errors.New("improper list")

// SExp is a node of a deserialized object: either an atom or a pair.
//
// An atom has First == nil and Rest == nil; its value is Atom, which is empty
// (but non-nil) for the nil object. A pair has both First and Rest set and a
// nil Atom.
type SExp struct {
	Atom  []byte
	First *SExp
	Rest  *SExp
}

// Nil returns the nil object, the zero-length atom.
func Nil() *SExp {
	return &SExp{Atom: []byte{}}
}

// NewAtom returns an atom holding [b].
func NewAtom(b []byte) *SExp {
	if b == nil {
		b = []byte{}
	}
	return &SExp{Atom: b}
}

// Cons returns the pair ([first] . [rest]).
func Cons(first, rest *SExp) *SExp {
	return &SExp{First: first, Rest: rest}
}

// NewList returns the nil-terminated list of [items].
func NewList(items ...*SExp) *SExp {
	list := Nil()
	for i := len(items) - 1; i >= 0; i-- {
		list = Cons(items[i], list)
	}
	return list
}

// IsPair returns true iff this node is a pair.
func (s *SExp) IsPair() bool {
	return s.First != nil
}

// IsNil returns true iff this node is the nil object.
func (s *SExp) IsNil() bool {
	return !s.IsPair() && len(s.Atom) == 0
}

// ProperList returns the elements of this nil-terminated list, or
// errImproperList if the chain of Rest pointers doesn't end in nil.
func (s *SExp) ProperList() ([]*SExp, error) {
	var items []*SExp
	for s.IsPair() {
		items = append(items, s.First)
		s = s.Rest
	}
	if !s.IsNil() {
		return nil, errImproperList
	}
	return items, nil
}
