package engine

import (
	"strings"
	"testing"
)

func mustPlay(t *testing.T, config Config, moves []int) (Outcome, error) {
	t.Helper()
	game, err := NewGame(config, moves)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return game.Play()
}

func TestPlayerAt(t *testing.T) {
	for i := 0; i < 10; i++ {
		want := PlayerFirst
		if i%2 == 1 {
			want = PlayerSecond
		}
		if got := PlayerAt(i); got != want {
			t.Errorf("PlayerAt(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestPlayOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		moves   []int
		outcome Outcome
	}{
		{
			name:    "single cell instant win",
			config:  Config{Columns: 1, Rows: 1, WinLength: 1},
			moves:   []int{1},
			outcome: OutcomeFirstWon,
		},
		{
			name:    "horizontal win on one-row board",
			config:  Config{Columns: 5, Rows: 1, WinLength: 3},
			moves:   []int{1, 4, 2, 5, 3},
			outcome: OutcomeFirstWon,
		},
		{
			name:    "vertical win",
			config:  Config{Columns: 2, Rows: 2, WinLength: 2},
			moves:   []int{1, 2, 1},
			outcome: OutcomeFirstWon,
		},
		{
			name:    "second player horizontal win",
			config:  Config{Columns: 7, Rows: 6, WinLength: 4},
			moves:   []int{1, 2, 1, 3, 1, 4, 7, 5},
			outcome: OutcomeSecondWon,
		},
		{
			name:    "draw on full board",
			config:  Config{Columns: 3, Rows: 1, WinLength: 2},
			moves:   []int{1, 2, 3},
			outcome: OutcomeDraw,
		},
		{
			name:    "ascending diagonal win",
			config:  Config{Columns: 4, Rows: 4, WinLength: 3},
			moves:   []int{1, 2, 2, 3, 4, 3, 3},
			outcome: OutcomeFirstWon,
		},
		{
			name:    "descending diagonal win",
			config:  Config{Columns: 4, Rows: 4, WinLength: 3},
			moves:   []int{4, 3, 3, 2, 1, 2, 2},
			outcome: OutcomeFirstWon,
		},
		{
			name:    "win on the very last cell of a full board",
			config:  Config{Columns: 3, Rows: 1, WinLength: 2},
			moves:   []int{1, 3, 2},
			outcome: OutcomeFirstWon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := mustPlay(t, tt.config, tt.moves)
			if err != nil {
				t.Fatalf("Play: %v", err)
			}
			if outcome != tt.outcome {
				t.Errorf("outcome = %v, want %v", outcome, tt.outcome)
			}
		})
	}
}

func TestPlayFailures(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		moves  []int
		kind   FailureKind
	}{
		{
			name:   "no moves at all",
			config: Config{Columns: 2, Rows: 2, WinLength: 2},
			kind:   FailureNoResult,
		},
		{
			name:   "moves run out before a result",
			config: Config{Columns: 7, Rows: 6, WinLength: 4},
			moves:  []int{1, 2, 1},
			kind:   FailureNoResult,
		},
		{
			name:   "column zero",
			config: Config{Columns: 2, Rows: 2, WinLength: 2},
			moves:  []int{0},
			kind:   FailureInvalidColumn,
		},
		{
			name:   "column beyond the board",
			config: Config{Columns: 2, Rows: 2, WinLength: 2},
			moves:  []int{3},
			kind:   FailureInvalidColumn,
		},
		{
			name:   "negative column",
			config: Config{Columns: 2, Rows: 2, WinLength: 2},
			moves:  []int{-1},
			kind:   FailureInvalidColumn,
		},
		{
			name:   "column filled past capacity",
			config: Config{Columns: 2, Rows: 2, WinLength: 2},
			moves:  []int{1, 1, 1},
			kind:   FailureColumnFull,
		},
		{
			name:   "moves continue after a win",
			config: Config{Columns: 1, Rows: 3, WinLength: 1},
			moves:  []int{1, 1},
			kind:   FailureExtraMoves,
		},
		{
			name:   "bad column after a win still reports extra moves",
			config: Config{Columns: 1, Rows: 3, WinLength: 1},
			moves:  []int{1, 99},
			kind:   FailureExtraMoves,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustPlay(t, tt.config, tt.moves)
			if err == nil {
				t.Fatal("expected a failure")
			}
			if got := FailureOf(err); got != tt.kind {
				t.Errorf("failure = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestBoardGrowth(t *testing.T) {
	game, err := NewGame(Config{Columns: 3, Rows: 2, WinLength: 3}, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if game.Status() != StatusInitialized {
		t.Errorf("status = %v, want initialized", game.Status())
	}
	for c := 0; c < 3; c++ {
		if h := game.ColumnHeight(c); h != 0 {
			t.Errorf("column %d height = %d, want 0", c, h)
		}
	}

	if err := game.dropDisc(PlayerFirst, 2); err != nil {
		t.Fatalf("dropDisc: %v", err)
	}
	if err := game.dropDisc(PlayerSecond, 2); err != nil {
		t.Fatalf("dropDisc: %v", err)
	}
	if h := game.ColumnHeight(1); h != 2 {
		t.Errorf("column height = %d, want 2", h)
	}
	if game.Cell(1, 0) != PlayerFirst || game.Cell(1, 1) != PlayerSecond {
		t.Error("discs must stack in placement order")
	}
	if game.Cell(0, 0) != NoPlayer || game.Cell(1, 5) == PlayerFirst {
		t.Error("unfilled cells must read as NoPlayer")
	}

	if err := game.dropDisc(PlayerFirst, 2); FailureOf(err) != FailureColumnFull {
		t.Errorf("overfull drop = %v, want column overflow", err)
	}
	if h := game.ColumnHeight(1); h != 2 {
		t.Errorf("failed drop must not grow the column, height = %d", h)
	}
}

func TestGameStatusTransitions(t *testing.T) {
	game, err := NewGame(Config{Columns: 2, Rows: 2, WinLength: 2}, []int{1, 2, 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := game.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if game.Status() != StatusConcluded {
		t.Errorf("status = %v, want concluded", game.Status())
	}

	game, err = NewGame(Config{Columns: 2, Rows: 2, WinLength: 2}, []int{1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := game.Play(); err == nil {
		t.Fatal("expected incomplete game")
	}
	if game.Status() != StatusFailed {
		t.Errorf("status = %v, want failed", game.Status())
	}
}

// Literal scenarios from the referee's external contract: input stream in,
// exit code out.
func TestValidateExitCodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  int
	}{
		{"instant win", "1 1 1\n1", 1},
		{"first wins row of three", "5 1 3\n1\n4\n2\n5\n3", 1},
		{"alternating full row draw", "3 1 2\n1\n2\n3", 0},
		// Filling a 2x2 board hands the first player a horizontal pair on
		// row 0 at move 3, so the recorded fourth move continues a decided
		// game.
		{"full 2x2 board decided before last move", "2 2 2\n1\n1\n2\n2", 4},
		{"first wins vertically", "2 2 2\n1\n2\n1", 1},
		{"second wins vertically", "3 3 2\n1\n2\n3\n2", 2},
		{"incomplete game", "2 2 2\n1", 3},
		{"extra moves after win", "1 1 1\n1\n1", 4},
		{"column overflow", "2 2 2\n1\n1\n1", 5},
		{"column zero", "2 2 2\n0", 6},
		{"column too large", "2 2 2\n5", 6},
		{"invalid configuration", "3 2 4\n1", 7},
		{"garbage input", "hello\n", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(strings.NewReader(tt.input))
			if v.Code != tt.code {
				t.Errorf("code = %d (%s), want %d", v.Code, v, tt.code)
			}
			if v.Legal != (tt.code <= 2) {
				t.Errorf("legal = %v for code %d", v.Legal, v.Code)
			}
		})
	}
}

func TestValidateVerdictDetails(t *testing.T) {
	v := Validate(strings.NewReader("5 1 3\n1\n4\n2\n5\n3"))
	if !v.Legal || v.Outcome != OutcomeFirstWon {
		t.Fatalf("verdict = %+v, want first player win", v)
	}
	if v.Moves != 5 {
		t.Errorf("moves = %d, want 5", v.Moves)
	}
	if v.Config != (Config{Columns: 5, Rows: 1, WinLength: 3}) {
		t.Errorf("config = %+v", v.Config)
	}

	v = Validate(strings.NewReader("3 2 4\n1\n2"))
	if v.Legal || v.Failure != FailureInvalidConfig {
		t.Fatalf("verdict = %+v, want invalid configuration", v)
	}
	if v.Moves != 2 {
		t.Errorf("moves = %d, want 2 (parsed before rejection)", v.Moves)
	}

	v = FailureVerdict(FailureInput)
	if v.Code != 9 {
		t.Errorf("input failure code = %d, want 9", v.Code)
	}
}
