// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package conditions

import (
	"errors"
	"fmt"

	"github.com/prayogimhd/chia-blockchain/clvm"
	"github.com/prayogimhd/chia-blockchain/crypto/bls"
	"github.com/prayogimhd/chia-blockchain/ids"
)

const (
	// maxMessageLen bounds the message argument of a signature condition.
	maxMessageLen = 1024
)

var (
	// ErrConditionParse is wrapped by every failure to decode a solution's
	// output into well-formed conditions.
	ErrConditionParse = errors.New("invalid condition program")

	errNotAList         = errors.New("condition program output is not a proper list")
	errConditionNotList = errors.New("condition is not a proper list")
	errEmptyCondition   = errors.New("condition is missing its opcode")
	errOpcodeNotAtom    = errors.New("condition opcode is not a single-byte atom")
	errUnknownOpcode    = errors.New("unknown condition opcode")
	errArgNotAtom       = errors.New("condition argument is not an atom")
	errWrongArgCount    = errors.New("wrong argument count")
	errPublicKeyLen     = errors.New("public key argument must be 48 bytes")
	errMessageTooLong   = errors.New("message argument too long")
	errHashLen          = errors.New("hash argument must be 32 bytes")
	errAmount           = errors.New("invalid amount argument")
)

// Condition is one declared requirement: an opcode and its arguments in
// declared order.
type Condition struct {
	Opcode Opcode
	Args   [][]byte
}

// Dict groups a spend's conditions by opcode. The per-opcode slices preserve
// the order the conditions appeared in the solution's output, which downstream
// consumers treat positionally.
type Dict map[Opcode][]Condition

// ParseConditions decodes [program], the serialized output of a spend's
// puzzle, into conditions grouped by opcode. Any malformed declaration fails
// the whole parse with an error wrapping ErrConditionParse.
func ParseConditions(program []byte) (Dict, error) {
	root, err := clvm.FromBytes(program)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConditionParse, err)
	}

	items, err := root.ProperList()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConditionParse, errNotAList)
	}

	dict := make(Dict)
	for i, item := range items {
		condition, err := parseCondition(item)
		if err != nil {
			return nil, fmt.Errorf("%w: condition %d: %s", ErrConditionParse, i, err)
		}
		dict[condition.Opcode] = append(dict[condition.Opcode], condition)
	}
	return dict, nil
}

func parseCondition(item *clvm.SExp) (Condition, error) {
	parts, err := item.ProperList()
	if err != nil {
		return Condition{}, errConditionNotList
	}
	if len(parts) == 0 {
		return Condition{}, errEmptyCondition
	}
	if parts[0].IsPair() || len(parts[0].Atom) != 1 {
		return Condition{}, errOpcodeNotAtom
	}

	condition := Condition{
		Opcode: Opcode(parts[0].Atom[0]),
		Args:   make([][]byte, 0, len(parts)-1),
	}
	for _, part := range parts[1:] {
		if part.IsPair() {
			return Condition{}, errArgNotAtom
		}
		condition.Args = append(condition.Args, part.Atom)
	}
	return condition, validateArgs(condition)
}

// validateArgs applies the per-opcode arity and size rules. Every opcode has
// an entry here; anything not listed is rejected.
func validateArgs(c Condition) error {
	switch c.Opcode {
	case AggSigUnsafe, AggSigMe:
		if len(c.Args) != 2 {
			return fmt.Errorf("%s: %w: expected 2, got %d", c.Opcode, errWrongArgCount, len(c.Args))
		}
		if len(c.Args[0]) != bls.PublicKeyLen {
			return fmt.Errorf("%s: %w", c.Opcode, errPublicKeyLen)
		}
		if len(c.Args[1]) > maxMessageLen {
			return fmt.Errorf("%s: %w: %d bytes", c.Opcode, errMessageTooLong, len(c.Args[1]))
		}
	case CreateCoin:
		if len(c.Args) != 2 {
			return fmt.Errorf("%s: %w: expected 2, got %d", c.Opcode, errWrongArgCount, len(c.Args))
		}
		if len(c.Args[0]) != ids.IDLen {
			return fmt.Errorf("%s: %w", c.Opcode, errHashLen)
		}
		if _, err := clvm.Uint64FromBytes(c.Args[1]); err != nil {
			return fmt.Errorf("%s: %w: %s", c.Opcode, errAmount, err)
		}
	case ReserveFee, AssertMyAmount, AssertSecondsRelative, AssertSecondsAbsolute,
		AssertHeightRelative, AssertHeightAbsolute:
		if len(c.Args) != 1 {
			return fmt.Errorf("%s: %w: expected 1, got %d", c.Opcode, errWrongArgCount, len(c.Args))
		}
		if _, err := clvm.Uint64FromBytes(c.Args[0]); err != nil {
			return fmt.Errorf("%s: %w: %s", c.Opcode, errAmount, err)
		}
	case CreateCoinAnnouncement, AssertCoinAnnouncement:
		if len(c.Args) != 1 {
			return fmt.Errorf("%s: %w: expected 1, got %d", c.Opcode, errWrongArgCount, len(c.Args))
		}
	case AssertMyCoinID, AssertMyParentID, AssertMyPuzzleHash:
		if len(c.Args) != 1 {
			return fmt.Errorf("%s: %w: expected 1, got %d", c.Opcode, errWrongArgCount, len(c.Args))
		}
		if len(c.Args[0]) != ids.IDLen {
			return fmt.Errorf("%s: %w", c.Opcode, errHashLen)
		}
	default:
		return fmt.Errorf("%w: %d", errUnknownOpcode, c.Opcode)
	}
	return nil
}
