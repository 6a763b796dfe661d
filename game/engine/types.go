package engine

import (
	"errors"
	"fmt"
)

// Player identifies who placed a disc. The zero value marks an empty cell.
type Player int

const (
	NoPlayer Player = iota
	PlayerFirst
	PlayerSecond
)

// Opponent returns the other player. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerFirst:
		return PlayerSecond
	case PlayerSecond:
		return PlayerFirst
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case PlayerFirst:
		return "first"
	case PlayerSecond:
		return "second"
	default:
		return "none"
	}
}

// Outcome is the terminal result of a completed, legal game. The numeric
// values double as process exit codes.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeFirstWon
	OutcomeSecondWon
)

// ExitCode maps the outcome to its process exit code.
func (o Outcome) ExitCode() int {
	return int(o)
}

func (o Outcome) String() string {
	switch o {
	case OutcomeDraw:
		return "draw"
	case OutcomeFirstWon:
		return "first player won"
	case OutcomeSecondWon:
		return "second player won"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// FailureKind enumerates the ways a recorded game can be illegal. The set is
// closed; every failure the referee reports carries exactly one kind.
type FailureKind int

const (
	FailureNone FailureKind = iota

	// FailureNoResult: all moves consumed, no winner, board not full.
	FailureNoResult

	// FailureExtraMoves: a move was played after the game was decided.
	FailureExtraMoves

	// FailureColumnFull: a move targets a column already holding Rows discs.
	FailureColumnFull

	// FailureInvalidColumn: a move references a column outside [1, Columns].
	FailureInvalidColumn

	// FailureInvalidConfig: the parameter triple violates the dimension
	// invariant Z <= max(X, Y), min(X, Y, Z) >= 1.
	FailureInvalidConfig

	// FailureParse: malformed first record or non-integer move record.
	FailureParse

	// FailureInput: the input file is missing or unreadable.
	FailureInput
)

// ExitCode maps the failure kind to its process exit code.
func (k FailureKind) ExitCode() int {
	switch k {
	case FailureNoResult:
		return 3
	case FailureExtraMoves:
		return 4
	case FailureColumnFull:
		return 5
	case FailureInvalidColumn:
		return 6
	case FailureInvalidConfig:
		return 7
	case FailureParse:
		return 8
	case FailureInput:
		return 9
	default:
		return 0
	}
}

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureNoResult:
		return "incomplete game"
	case FailureExtraMoves:
		return "moves after game end"
	case FailureColumnFull:
		return "column overflow"
	case FailureInvalidColumn:
		return "invalid column"
	case FailureInvalidConfig:
		return "invalid configuration"
	case FailureParse:
		return "parsing problem"
	case FailureInput:
		return "unreadable input"
	default:
		return fmt.Sprintf("failure(%d)", int(k))
	}
}

// RuleError is the single error type produced by the referee. Column carries
// the offending 1-based column for column failures and is zero otherwise.
type RuleError struct {
	Kind   FailureKind
	Column int
}

func (e *RuleError) Error() string {
	if e.Column != 0 {
		return fmt.Sprintf("%s: column %d", e.Kind, e.Column)
	}
	return e.Kind.String()
}

// FailureOf extracts the failure kind from an error returned by this
// package. It returns FailureNone for nil and for foreign errors.
func FailureOf(err error) FailureKind {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return FailureNone
}

// Status reflects where a replay is in its lifecycle.
type Status int

const (
	StatusInitialized Status = iota
	StatusInProgress
	StatusConcluded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusInProgress:
		return "in progress"
	case StatusConcluded:
		return "concluded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
