// Package service provides the business logic layer between the referee
// engine and its transports.
//
// The service package implements:
//   - Log submission: run the referee over a submitted log and keep the
//     resulting report
//   - Report retrieval, listing and deletion
//   - One-shot file checking for the CLI
//
// Architecture:
//
// RefereeService is the single interface the HTTP, WebSocket and MCP
// transports talk to. The implementation is stateless apart from the report
// store it wraps; every submission is an independent game, validated
// start-to-finish before the call returns.
//
// Usage:
//
//	store := report.NewStore()
//	svc := service.NewRefereeService(store, logger)
//
//	rep, err := svc.Submit(ctx, "round-12", "3 3 3\n1\n2\n1\n2\n1\n2\n1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(rep.Verdict)
package service
