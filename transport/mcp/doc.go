// Package mcp provides a Model Context Protocol interface to the referee.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for log validation and report management
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - check_log: Validate a game log and get its verdict
//   - get_report: Fetch one stored report by ID
//   - list_reports: List all stored reports, newest first
//   - delete_report: Delete a stored report
//   - game_rules: Get the input format and the verdict code table
//
// Architecture:
//
// The client is a thin proxy: every tool call becomes an HTTP request to
// the REST API, so the MCP process never holds referee state of its own.
// That keeps stdio MCP sessions and browser clients looking at the same
// report store.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//
//	// Stdio mode
//	server.ServeStdio(client.GetMCPServer())
//
//	// HTTP mode
//	httpServer := server.NewStreamableHTTPServer(client.GetMCPServer())
//	mux.Handle("/mcp", httpServer)
package mcp
