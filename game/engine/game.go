package engine

// Game replays one recorded Connect-Z game. It owns the board, the single
// mutable piece of state in the referee; discs are only ever appended, and
// the whole object is discarded once a verdict is produced.
type Game struct {
	config Config
	grid   [][]Player
	moves  []int
	status Status
}

// NewGame builds a referee for one recorded game. The configuration is
// validated before any board state exists.
func NewGame(config Config, moves []int) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	grid := make([][]Player, config.Columns)
	for i := range grid {
		grid[i] = make([]Player, 0, config.Rows)
	}

	return &Game{
		config: config,
		grid:   grid,
		moves:  moves,
		status: StatusInitialized,
	}, nil
}

// PlayerAt returns which player makes the move at index i (0-based). Turn
// order is strict alternation starting with the first player.
func PlayerAt(i int) Player {
	if i%2 == 0 {
		return PlayerFirst
	}
	return PlayerSecond
}

// Config returns the game's parameter triple.
func (g *Game) Config() Config {
	return g.config
}

// Status returns where the replay is in its lifecycle.
func (g *Game) Status() Status {
	return g.status
}

// Cell returns the disc at column x, height y (both 0-based), or NoPlayer
// when the position has not been filled.
func (g *Game) Cell(x, y int) Player {
	column := g.grid[x]
	if y >= len(column) {
		return NoPlayer
	}
	return column[y]
}

// ColumnHeight returns the number of discs in the 0-based column c.
func (g *Game) ColumnHeight(c int) int {
	return len(g.grid[c])
}

// Full reports whether every column holds exactly Rows discs.
func (g *Game) Full() bool {
	for _, column := range g.grid {
		if len(column) != g.config.Rows {
			return false
		}
	}
	return true
}

// dropDisc validates and applies a single 1-based column move for p.
func (g *Game) dropDisc(p Player, column int) error {
	if column < 1 || column > g.config.Columns {
		return &RuleError{Kind: FailureInvalidColumn, Column: column}
	}
	if len(g.grid[column-1]) >= g.config.Rows {
		return &RuleError{Kind: FailureColumnFull, Column: column}
	}
	g.grid[column-1] = append(g.grid[column-1], p)
	return nil
}

// Play replays the move log from the empty board and classifies the game.
//
// The per-move order matters: before move i is placed, the previous mover
// must not already hold a winning line (the log would be continuing a
// finished game), then the column index and capacity are checked, then the
// disc drops. After the last move the final position is evaluated: a win for
// the last mover, a draw on a full board, or an incomplete game.
func (g *Game) Play() (Outcome, error) {
	g.status = StatusInProgress

	last := NoPlayer
	for i, column := range g.moves {
		if last != NoPlayer && g.HasWin(last) {
			g.status = StatusFailed
			return 0, &RuleError{Kind: FailureExtraMoves}
		}
		mover := PlayerAt(i)
		if err := g.dropDisc(mover, column); err != nil {
			g.status = StatusFailed
			return 0, err
		}
		last = mover
	}

	if last != NoPlayer && g.HasWin(last) {
		g.status = StatusConcluded
		if last == PlayerFirst {
			return OutcomeFirstWon, nil
		}
		return OutcomeSecondWon, nil
	}
	if g.Full() {
		g.status = StatusConcluded
		return OutcomeDraw, nil
	}

	g.status = StatusFailed
	return 0, &RuleError{Kind: FailureNoResult}
}
