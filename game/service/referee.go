package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gameref/connectz/game/engine"
	"github.com/gameref/connectz/game/report"
)

// refereeService implements RefereeService on top of an in-memory report
// store.
type refereeService struct {
	store *report.Store
	log   zerolog.Logger
}

// NewRefereeService creates the referee service.
func NewRefereeService(store *report.Store, logger zerolog.Logger) RefereeService {
	return &refereeService{
		store: store,
		log:   logger,
	}
}

// Submit validates one game log and stores the resulting report. An illegal
// game is not an error: the verdict carries the failure and the call
// succeeds. Errors are reserved for requests the referee cannot run at all.
func (s *refereeService) Submit(ctx context.Context, name, log string) (*report.Report, error) {
	if strings.TrimSpace(log) == "" {
		return nil, fmt.Errorf("empty game log")
	}
	if name == "" {
		name = "unnamed"
	}

	verdict := engine.Validate(strings.NewReader(log))
	rep := s.store.Add(name, verdict)

	s.log.Info().
		Str("report_id", rep.ID).
		Str("name", rep.Name).
		Int("code", verdict.Code).
		Int("moves", verdict.Moves).
		Str("verdict", verdict.String()).
		Msg("game log validated")

	return rep, nil
}

// CheckFile validates the game log at path. An unreadable file maps to the
// input-failure verdict rather than an error, matching the process
// contract's exit code 9.
func (s *refereeService) CheckFile(ctx context.Context, path string) (engine.Verdict, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.FailureVerdict(engine.FailureInput), nil
	}
	defer f.Close()

	return engine.Validate(f), nil
}

func (s *refereeService) Get(ctx context.Context, id string) (*report.Report, error) {
	return s.store.Get(id)
}

func (s *refereeService) List(ctx context.Context) ([]*report.Report, error) {
	return s.store.List(), nil
}

func (s *refereeService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.log.Info().Str("report_id", id).Msg("report deleted")
	return nil
}

func (s *refereeService) Rules(ctx context.Context) RulesInfo {
	return RulesInfo{
		Game: "Connect-Z: X columns, Y rows, Z discs in a row to win",
		InputFormat: "line 1: \"X Y Z\" (three positive integers); " +
			"each later line: one 1-based column index; blank lines ignored",
		Codes: []CodeInfo{
			{0, "draw"},
			{1, "first player won"},
			{2, "second player won"},
			{3, "incomplete game: moves exhausted with no result"},
			{4, "moves continue after the game was decided"},
			{5, "column overflow"},
			{6, "invalid column"},
			{7, "invalid configuration"},
			{8, "parsing problem"},
			{9, "input file missing or unreadable"},
		},
	}
}
