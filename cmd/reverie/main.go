package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ameara/reverie/internal/analysis"
	"github.com/ameara/reverie/internal/capture"
	"github.com/ameara/reverie/internal/config"
	"github.com/ameara/reverie/internal/db"
	"github.com/ameara/reverie/internal/logging"
	"github.com/ameara/reverie/internal/mcp"
	"github.com/ameara/reverie/internal/session"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// openStore opens the entry store. The MCP server keeps the store in
// memory and scoped to the session unless persistence is enabled; the
// CLI surfaces are one-shot processes, so they always use the
// file-backed store.
func openStore(cfg *config.Config, baseDir string) (*sql.DB, error) {
	if cfg.Persist || isCLIMode() {
		store, err := db.Init(baseDir)
		if err != nil {
			return nil, err
		}
		db.ConfigurePool(store, cfg)
		return store, nil
	}
	return db.InitMemory()
}

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"mood": true, "journal": true, "quiz": true,
	"voice": true, "frame": true,
	"list": true, "get": true, "count": true, "delete": true,
	"serve": true,
	"help":  true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _ __ _____   _____ _ __(_) ___
  | '__/ _ \ \ / / _ \ '__| |/ _ \
  | | |  __/\ V /  __/ |  | |  __/
  |_|  \___| \_/ \___|_|  |_|\___|

  Reflection tracking engine

  Usage: reverie <command> [options]
         reverie --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before any setup (nothing needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir := filepath.Join(homeDir, ".reverie")

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New("info", "json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logging.Sync(log) }()

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		for _, name := range unknown {
			fmt.Fprintf(os.Stderr, "warning: unknown disabled tool %q\n", name)
		}
	}

	store, err := openStore(cfg, baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	controller := session.NewController(
		store,
		cfg,
		capture.NewSimulated(),
		analysis.NewSimulated(time.Now().UnixNano()),
	)
	defer controller.Close()

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(controller, cfg, log)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'reverie --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(controller, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
