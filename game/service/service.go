package service

import (
	"context"

	"github.com/gameref/connectz/game/engine"
	"github.com/gameref/connectz/game/report"
)

// RefereeService defines all referee operations exposed to transports.
type RefereeService interface {
	// Log validation
	Submit(ctx context.Context, name, log string) (*report.Report, error)
	CheckFile(ctx context.Context, path string) (engine.Verdict, error)

	// Report management
	Get(ctx context.Context, id string) (*report.Report, error)
	List(ctx context.Context) ([]*report.Report, error)
	Delete(ctx context.Context, id string) error

	// Rules
	Rules(ctx context.Context) RulesInfo
}

// RulesInfo describes the input format and the verdict code table for
// clients discovering the service.
type RulesInfo struct {
	Game        string     `json:"game"`
	InputFormat string     `json:"input_format"`
	Codes       []CodeInfo `json:"codes"`
}

// CodeInfo is one row of the verdict code table.
type CodeInfo struct {
	Code    int    `json:"code"`
	Meaning string `json:"meaning"`
}
