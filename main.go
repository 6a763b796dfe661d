// Command connectz referees recorded games of Connect-Z, the generalized
// Connect Four played on an X-column, Y-row board where Z discs in a row win.
//
// The default invocation validates one game file and reports the verdict
// through the process exit code:
//
//	0-2  legal game: draw, first player won, second player won
//	3-8  illegal game: the code identifies the rule that was broken
//	9    the input file could not be read
//
// Subcommands add a batch mode for whole directories of logs and a server
// mode exposing the referee over REST, WebSocket and MCP.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/gameref/connectz/api"
	"github.com/gameref/connectz/game/engine"
	"github.com/gameref/connectz/game/report"
	"github.com/gameref/connectz/game/service"
	"github.com/gameref/connectz/transport/mcp"
	"github.com/gameref/connectz/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Connect-Z Referee"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cmd := rootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. LOG_LEVEL selects the level, console
// output goes to stderr so verdict output on stdout stays clean.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		level = lvl
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:      "connectz",
		Usage:     "referee for recorded Connect-Z games",
		Version:   Version,
		ArgsUsage: "<game file>",
		Description: `Validates one recorded game and exits with the verdict code.
The first line of the file is "X Y Z"; every following line is one
1-based column number, players strictly alternating.`,
		Action: checkAction,
		Commands: []*cli.Command{
			batchCommand(),
			serveCommand(),
			mcpCommand(),
		},
	}
}

// checkAction is the default, contract-bound invocation: exactly one file
// argument, no output, the exit code is the verdict.
func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		fmt.Fprintln(os.Stderr, "connectz: provide one input file")
		os.Exit(2)
	}
	os.Exit(exitCodeFor(cmd.Args().First()))
	return nil
}

// exitCodeFor validates the game file at path and returns its verdict code.
func exitCodeFor(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return engine.FailureInput.ExitCode()
	}
	defer f.Close()

	return engine.Validate(f).Code
}

// batchCommand validates many game files and prints a per-file report.
func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "validate many game files and print a summary",
		ArgsUsage: "<file or glob> ...",
		Action:    batchAction,
	}
}

func batchAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("batch: provide at least one file or glob")
	}

	var files []string
	for _, arg := range cmd.Args().Slice() {
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			// Not a glob, or a glob matching nothing: keep the literal
			// path so the report shows it as unreadable.
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}

	allLegal := true
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			fmt.Printf("❌ %s: %s (code %d)\n",
				file, engine.FailureInput, engine.FailureInput.ExitCode())
			allLegal = false
			continue
		}
		verdict := engine.Validate(f)
		f.Close()

		if verdict.Legal {
			fmt.Printf("✅ %s: %s (code %d, %d moves)\n",
				file, verdict, verdict.Code, verdict.Moves)
		} else {
			fmt.Printf("❌ %s: %s (code %d)\n", file, verdict, verdict.Code)
			allLegal = false
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allLegal {
		fmt.Printf("✅ All %d games are legal\n", len(files))
		return nil
	}
	fmt.Println("❌ Some games are illegal")
	os.Exit(1)
	return nil
}

// serveCommand runs the HTTP server with REST API, WebSocket hub and an
// /mcp endpoint.
func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the referee as an HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Value: "localhost",
				Usage: "HTTP server host",
			},
			&cli.IntFlag{
				Name:  "port",
				Value: 8080,
				Usage: "HTTP server port",
			},
		},
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger()
	addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))

	store := report.NewStore()
	refereeService := service.NewRefereeService(store, logger)

	// Create WebSocket hub
	hub := websocket.NewHub(logger)
	go hub.Run()

	// Create API server
	apiServer := api.NewServer(refereeService, hub, logger)

	// Create MCP client for /mcp endpoint
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))

	// Create main router that combines API and MCP
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", mcpHTTPHandler(mcpClient))

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Prune stale reports in the background
	go reportCleanupRoutine(store, logger)

	// Handle shutdown signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", addr).
			Str("api", fmt.Sprintf("http://%s/api", addr)).
			Str("ws", fmt.Sprintf("ws://%s/ws", addr)).
			Str("mcp", fmt.Sprintf("http://%s/mcp", addr)).
			Msg("HTTP server listening")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logger.Info().Msg("server stopped")
	return nil
}

// mcpHTTPHandler exposes the MCP server over plain HTTP POST.
func mcpHTTPHandler(mcpClient *mcp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	}
}

// reportCleanupRoutine periodically removes reports older than the
// retention window.
func reportCleanupRoutine(store *report.Store, logger zerolog.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := store.CleanupExpired(24 * time.Hour)
		if removed > 0 {
			logger.Info().Int("removed", removed).Msg("cleaned up expired reports")
		}
	}
}

// mcpCommand runs an MCP stdio server backed by the REST API.
func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "run an MCP stdio server for AI agent integration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-url",
				Value: "http://localhost:8080",
				Usage: "external API server to proxy to",
			},
		},
		Action: mcpAction,
	}
}

// mcpAction tries to reuse an external API server; if none responds it
// starts an internal one on a random loopback port and targets that.
func mcpAction(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger()

	externalURL := cmd.String("api-url")
	baseURL := externalURL

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		logger.Info().Str("url", externalURL).Msg("using external API server for MCP")
	} else {
		logger.Info().Msg("no external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := fmt.Sprintf("127.0.0.1:%d", listener.Addr().(*net.TCPAddr).Port)

		store := report.NewStore()
		refereeService := service.NewRefereeService(store, logger)

		hub := websocket.NewHub(logger)
		go hub.Run()

		apiServer := api.NewServer(refereeService, hub, logger)
		httpServer := &http.Server{Handler: apiServer}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("internal HTTP server error")
			}
		}()

		// Give the listener a moment before the first tool call
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
		logger.Info().Str("addr", internalAddr).Msg("internal HTTP server ready")
	}

	mcpClient := mcp.NewClient(baseURL)

	logger.Info().Msg("MCP stdio server ready")
	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
