package engine

import (
	"strings"
	"testing"
)

func TestParseGame(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		config    Config
		moves     []int
		wantParse bool
	}{
		{
			name:   "header and moves",
			input:  "7 6 4\n1\n2\n1\n",
			config: Config{Columns: 7, Rows: 6, WinLength: 4},
			moves:  []int{1, 2, 1},
		},
		{
			name:   "header only",
			input:  "3 3 3\n",
			config: Config{Columns: 3, Rows: 3, WinLength: 3},
		},
		{
			name:   "blank lines are skipped",
			input:  "2 2 2\n1\n\n2\n\n",
			config: Config{Columns: 2, Rows: 2, WinLength: 2},
			moves:  []int{1, 2},
		},
		{
			name:   "extra whitespace in header",
			input:  "  7   6  4 \n1\n",
			config: Config{Columns: 7, Rows: 6, WinLength: 4},
			moves:  []int{1},
		},
		{
			name:   "no trailing newline",
			input:  "2 2 2\n1",
			config: Config{Columns: 2, Rows: 2, WinLength: 2},
			moves:  []int{1},
		},
		{name: "empty input", input: "", wantParse: true},
		{name: "header with two integers", input: "7 6\n1\n", wantParse: true},
		{name: "header with four integers", input: "7 6 4 2\n1\n", wantParse: true},
		{name: "non-integer header", input: "7 six 4\n1\n", wantParse: true},
		{name: "non-integer move", input: "7 6 4\n1\nx\n", wantParse: true},
		{name: "move with two integers", input: "7 6 4\n1 2\n", wantParse: true},
		{name: "fractional move", input: "7 6 4\n1.5\n", wantParse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, moves, err := ParseGame(strings.NewReader(tt.input))
			if tt.wantParse {
				if FailureOf(err) != FailureParse {
					t.Fatalf("expected parsing failure, got config=%v moves=%v err=%v", config, moves, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config != tt.config {
				t.Errorf("config = %v, want %v", config, tt.config)
			}
			if len(moves) != len(tt.moves) {
				t.Fatalf("moves = %v, want %v", moves, tt.moves)
			}
			for i := range moves {
				if moves[i] != tt.moves[i] {
					t.Errorf("moves[%d] = %d, want %d", i, moves[i], tt.moves[i])
				}
			}
		})
	}
}

func TestParseGameDoesNotCheckInvariant(t *testing.T) {
	// A bad move record must outrank an invalid configuration; the parser
	// therefore reads the whole stream before anyone looks at dimensions.
	_, _, err := ParseGame(strings.NewReader("3 2 4\nnope\n"))
	if FailureOf(err) != FailureParse {
		t.Fatalf("expected parsing failure, got %v", err)
	}

	config, moves, err := ParseGame(strings.NewReader("3 2 4\n1\n"))
	if err != nil {
		t.Fatalf("parser must accept a well-formed but invalid configuration: %v", err)
	}
	if config.Validate() == nil {
		t.Error("expected the configuration to fail validation downstream")
	}
	if len(moves) != 1 {
		t.Errorf("moves = %v, want one move", moves)
	}
}
