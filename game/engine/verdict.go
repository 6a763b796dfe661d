package engine

import (
	"fmt"
	"io"
)

// Verdict is the terminal classification of one recorded game: either a
// legal outcome or a failure kind, plus the process exit code both map to.
type Verdict struct {
	Legal   bool        `json:"legal"`
	Outcome Outcome     `json:"outcome"`
	Failure FailureKind `json:"failure"`
	Code    int         `json:"code"`
	Moves   int         `json:"moves"`
	Config  Config      `json:"config"`
}

func (v Verdict) String() string {
	if v.Legal {
		return v.Outcome.String()
	}
	return fmt.Sprintf("illegal: %s", v.Failure)
}

// Validate runs the whole referee pipeline over one input stream: parse,
// check the configuration, replay the moves, classify the end position.
func Validate(r io.Reader) Verdict {
	config, moves, err := ParseGame(r)
	if err != nil {
		return FailureVerdict(FailureOf(err))
	}

	game, err := NewGame(config, moves)
	if err != nil {
		v := FailureVerdict(FailureOf(err))
		v.Config = config
		v.Moves = len(moves)
		return v
	}

	outcome, err := game.Play()
	if err != nil {
		v := FailureVerdict(FailureOf(err))
		v.Config = config
		v.Moves = len(moves)
		return v
	}

	return Verdict{
		Legal:   true,
		Outcome: outcome,
		Code:    outcome.ExitCode(),
		Moves:   len(moves),
		Config:  config,
	}
}

// FailureVerdict builds the verdict for a game that never produced an
// outcome. It is also used by callers that fail before the engine runs,
// such as an unreadable input file.
func FailureVerdict(kind FailureKind) Verdict {
	return Verdict{Failure: kind, Code: kind.ExitCode()}
}
