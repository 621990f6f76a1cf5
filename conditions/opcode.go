// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package conditions decodes a spend's declared conditions and derives the
// signing obligations they impose.
package conditions

// Opcode identifies the kind of a condition declared by a puzzle's output.
// The set of opcodes is closed: the parser rejects anything else.
type Opcode uint8

const (
	AggSigUnsafe Opcode = 49
	AggSigMe     Opcode = 50

	CreateCoin Opcode = 51
	ReserveFee Opcode = 52

	CreateCoinAnnouncement Opcode = 60
	AssertCoinAnnouncement Opcode = 61

	AssertMyCoinID     Opcode = 70
	AssertMyParentID   Opcode = 71
	AssertMyPuzzleHash Opcode = 72
	AssertMyAmount     Opcode = 73

	AssertSecondsRelative Opcode = 80
	AssertSecondsAbsolute Opcode = 81
	AssertHeightRelative  Opcode = 82
	AssertHeightAbsolute  Opcode = 83
)

// aggSigOpcodes are the signature-requiring opcodes, in the order their
// obligations are emitted.
var aggSigOpcodes = []Opcode{AggSigUnsafe, AggSigMe}

func (op Opcode) String() string {
	switch op {
	case AggSigUnsafe:
		return "AGG_SIG_UNSAFE"
	case AggSigMe:
		return "AGG_SIG_ME"
	case CreateCoin:
		return "CREATE_COIN"
	case ReserveFee:
		return "RESERVE_FEE"
	case CreateCoinAnnouncement:
		return "CREATE_COIN_ANNOUNCEMENT"
	case AssertCoinAnnouncement:
		return "ASSERT_COIN_ANNOUNCEMENT"
	case AssertMyCoinID:
		return "ASSERT_MY_COIN_ID"
	case AssertMyParentID:
		return "ASSERT_MY_PARENT_ID"
	case AssertMyPuzzleHash:
		return "ASSERT_MY_PUZZLEHASH"
	case AssertMyAmount:
		return "ASSERT_MY_AMOUNT"
	case AssertSecondsRelative:
		return "ASSERT_SECONDS_RELATIVE"
	case AssertSecondsAbsolute:
		return "ASSERT_SECONDS_ABSOLUTE"
	case AssertHeightRelative:
		return "ASSERT_HEIGHT_RELATIVE"
	case AssertHeightAbsolute:
		return "ASSERT_HEIGHT_ABSOLUTE"
	default:
		return "UNKNOWN"
	}
}
