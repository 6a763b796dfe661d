package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gameref/connectz/game/report"
	"github.com/gameref/connectz/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Connect-Z Referee",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Connect-Z Referee - MCP Interface

This is a thin client that proxies all requests to the REST API server.

WHAT IT DOES:
Validates recorded games of Connect-Z, the generalized Connect Four played
on an X-column, Y-row board where Z discs in a row win.

LOG FORMAT:
The first line is "X Y Z". Every following line is one 1-based column
number, players strictly alternating, first player moves first.

AVAILABLE TOOLS:
- check_log: Validate a game log and get its verdict
- get_report: Fetch one stored report by ID
- list_reports: List all stored reports
- delete_report: Delete a stored report
- game_rules: Get the input format and the verdict code table

An illegal game is NOT a tool error: check_log succeeds and the verdict
explains what went wrong. Use game_rules to interpret verdict codes.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_log",
		Description: "Validate a recorded Connect-Z game log and get the referee's verdict",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"log": map[string]interface{}{
					"type":        "string",
					"description": "The raw game log: first line \"X Y Z\", then one column number per line",
				},
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Optional label for the stored report",
				},
			},
			Required: []string{"log"},
		},
	}, c.handleCheckLog)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_report",
		Description: "Fetch one stored verdict report by its ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"report_id": map[string]interface{}{
					"type":        "string",
					"description": "Report ID to retrieve",
				},
			},
			Required: []string{"report_id"},
		},
	}, c.handleGetReport)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_reports",
		Description: "List all stored verdict reports, newest first",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListReports)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_report",
		Description: "Delete a stored verdict report",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"report_id": map[string]interface{}{
					"type":        "string",
					"description": "Report ID to delete",
				},
			},
			Required: []string{"report_id"},
		},
	}, c.handleDeleteReport)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the game rules, input format and the verdict code table",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCheckLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	log, _ := args["log"].(string)
	name, _ := args["name"].(string)

	body := map[string]string{"log": log}
	if name != "" {
		body["name"] = name
	}

	var rep report.Report
	err := c.apiCall("POST", "/api/reports", body, &rep)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatReport(&rep)), nil
}

func (c *Client) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	reportID, _ := args["report_id"].(string)

	var rep report.Report
	err := c.apiCall("GET", fmt.Sprintf("/api/reports/%s", reportID), nil, &rep)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatReport(&rep)), nil
}

func (c *Client) handleListReports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count   int             `json:"count"`
		Reports []report.Report `json:"reports"`
	}

	err := c.apiCall("GET", "/api/reports", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Stored Reports (%d):\n\n", response.Count)
	for _, r := range response.Reports {
		result += fmt.Sprintf("- %s %q: %s (code %d, %s)\n",
			r.ID, r.Name, r.Verdict, r.Verdict.Code,
			r.SubmittedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDeleteReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	reportID, _ := args["report_id"].(string)

	var response struct {
		Message string `json:"message"`
	}

	err := c.apiCall("DELETE", fmt.Sprintf("/api/reports/%s", reportID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response.Message), nil
}

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var rules service.RulesInfo
	err := c.apiCall("GET", "/api/rules", nil, &rules)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(rules.Game + "\n\n")
	b.WriteString("Input format: " + rules.InputFormat + "\n\n")
	b.WriteString("Verdict codes:\n")
	for _, code := range rules.Codes {
		b.WriteString(fmt.Sprintf("  %d - %s\n", code.Code, code.Meaning))
	}

	return mcp.NewToolResultText(b.String()), nil
}

// Formatting helpers

func formatReport(rep *report.Report) string {
	v := rep.Verdict

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Report: %s\nName: %s\nSubmitted: %s\n\n",
		rep.ID, rep.Name, rep.SubmittedAt.Format("2006-01-02 15:04:05")))

	if v.Legal {
		b.WriteString(fmt.Sprintf("Verdict: ✓ legal game, %s\n", v.Outcome))
	} else {
		b.WriteString(fmt.Sprintf("Verdict: ✗ %s\n", v))
	}
	b.WriteString(fmt.Sprintf("Code: %d\n", v.Code))

	// A parse failure never recovers a configuration to print.
	if v.Config.Columns > 0 {
		b.WriteString(fmt.Sprintf("Board: %d columns x %d rows, %d in a row to win\n",
			v.Config.Columns, v.Config.Rows, v.Config.WinLength))
		b.WriteString(fmt.Sprintf("Moves: %d\n", v.Moves))
	}

	return b.String()
}
