package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ironsheep/artboard-tools-mcp/internal/document/memdoc"
	"github.com/ironsheep/artboard-tools-mcp/internal/geometry"
	"github.com/ironsheep/artboard-tools-mcp/internal/logging"
	"github.com/ironsheep/artboard-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("artboard-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("artboard-tools-mcp - MCP server for artboard layout and palette conversion")
			fmt.Println()
			fmt.Println("Usage: artboard-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  ARTBOARD_MCP_LOG_LEVEL=debug         Log level: debug, info, warn, error (default warn)")
			fmt.Println("  ARTBOARD_MCP_PASTE_OFFSET=dx,dy      Offset applied to duplicated items (default 0,0)")
			fmt.Println("  ARTBOARD_MCP_ENV_FILE=path           Read variables from this file (default .env)")
			fmt.Println()
			fmt.Println("Variables already set in the environment take precedence over the env file.")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	envFile := os.Getenv("ARTBOARD_MCP_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	envErr := godotenv.Load(envFile)
	if errors.Is(envErr, fs.ErrNotExist) {
		envErr = nil
	}

	// Log to stderr (stdout is for MCP protocol)
	level := logging.ParseLevel(os.Getenv("ARTBOARD_MCP_LOG_LEVEL"), slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logging.SetLogger(logger)

	if envErr != nil {
		logger.Warn("failed to read env file", "path", envFile, "error", envErr)
	}
	logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	var opts []memdoc.Option
	if v := os.Getenv("ARTBOARD_MCP_PASTE_OFFSET"); v != "" {
		var dx, dy float64
		if _, err := fmt.Sscanf(v, "%g,%g", &dx, &dy); err != nil {
			logger.Error("invalid ARTBOARD_MCP_PASTE_OFFSET", "value", v, "error", err)
			os.Exit(2)
		}
		opts = append(opts, memdoc.WithPasteOffset(geometry.Pt(dx, dy)))
	}

	srv := server.New(opts...)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
