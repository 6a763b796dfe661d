// Package engine implements the Connect-Z referee: it replays a recorded
// game against an X-columns by Y-rows board and decides whether the log is a
// legal game, and if so, how it ended.
//
// The engine package implements:
//   - Parsing of the line-oriented game log format
//   - Board simulation with strict player alternation
//   - Win detection over columns, rows and both diagonal families for an
//     arbitrary run length Z
//   - A closed taxonomy of terminal failures with stable exit codes
//
// Core Types:
//
// Config holds the (columns, rows, win length) triple read from the first
// input record. Game owns the board and replays the move log. Verdict is the
// terminal classification of one game: either an Outcome (draw or a winner)
// or a FailureKind explaining why the log is illegal.
//
// Usage:
//
//	f, err := os.Open("game.txt")
//	if err != nil {
//		// input failure, exit code 9
//	}
//	defer f.Close()
//
//	verdict := engine.Validate(f)
//	os.Exit(verdict.Code)
//
// Game Rules:
//
// Two players alternate dropping discs into columns, first player first. A
// player wins by holding Z consecutive discs in a column, a row or a
// diagonal. A log that keeps playing after the game was decided, ends before
// it was decided, references a bad column, or overfills a column is illegal;
// each illegality maps to its own failure kind.
package engine
