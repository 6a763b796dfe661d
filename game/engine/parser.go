package engine

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseGame reads a recorded game from r. The first record must carry
// exactly three whitespace-separated positive integers (columns, rows, win
// length); every following non-blank record carries one 1-based column
// index. Blank records are skipped. Any other shape is a parsing failure.
//
// The configuration invariant is deliberately not checked here: a malformed
// record anywhere in the stream outranks an invalid configuration.
func ParseGame(r io.Reader) (Config, []int, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		// Empty stream or read error: either way the header is missing.
		return Config{}, nil, &RuleError{Kind: FailureParse}
	}

	fields := strings.Fields(sc.Text())
	if len(fields) != 3 {
		return Config{}, nil, &RuleError{Kind: FailureParse}
	}

	var dims [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Config{}, nil, &RuleError{Kind: FailureParse}
		}
		dims[i] = n
	}
	config := Config{Columns: dims[0], Rows: dims[1], WinLength: dims[2]}

	var moves []int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		column, err := strconv.Atoi(line)
		if err != nil {
			return Config{}, nil, &RuleError{Kind: FailureParse}
		}
		moves = append(moves, column)
	}
	if err := sc.Err(); err != nil {
		return Config{}, nil, &RuleError{Kind: FailureParse}
	}

	return config, moves, nil
}
