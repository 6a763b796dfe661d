package engine

// Config is the immutable parameter triple read from the first input record:
// board width, board height and the run length required to win.
type Config struct {
	Columns   int `json:"columns"`
	Rows      int `json:"rows"`
	WinLength int `json:"win_length"`
}

// Validate checks the dimension invariant. A win length longer than the
// board's longest axis can never be reached, and non-positive dimensions
// leave nothing to play on.
func (c Config) Validate() error {
	if c.WinLength > max(c.Columns, c.Rows) || min(c.Columns, c.Rows, c.WinLength) < 1 {
		return &RuleError{Kind: FailureInvalidConfig}
	}
	return nil
}
