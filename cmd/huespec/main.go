package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/huespec/huespec/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "extract":
		if err := runExtract(args); err != nil {
			fmt.Fprintf(os.Stderr, "extract failed: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(args); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(args); err != nil {
			fmt.Fprintf(os.Stderr, "watch failed: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("huespec %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newLogger builds the CLI logger on stderr so stdout stays free for
// the MCP transport and command output.
func newLogger(level string) *slog.Logger {
	cfg := util.DefaultLoggerConfig()
	cfg.Output = os.Stderr
	cfg.Format = util.FormatText
	if level != "" {
		cfg.Level = util.LogLevel(level)
	}
	logger := util.NewLogger(cfg)
	// Anything falling back to slog.Default() shares the CLI handler.
	util.SetDefault(logger)
	return logger
}

func printUsage() {
	fmt.Println("Usage: huespec <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  extract <url|dir>   Extract a design model and write artifacts")
	fmt.Println("  serve               Start the MCP server on stdio")
	fmt.Println("  watch <dir>         Re-extract on file changes")
	fmt.Println("  version             Print version")
	fmt.Println("  help                Show this help message")
	fmt.Println()
	fmt.Println("Extract/watch flags:")
	fmt.Println("  --format <list>     Comma-separated output formats (default: css,json)")
	fmt.Println("  --out <dir>         Output directory (default: .)")
	fmt.Println("  --log-level <lvl>   debug, info, warn or error (default: info)")
	fmt.Println()
	fmt.Println("Serve flags:")
	fmt.Println("  --call-log <path>   Append per-tool-call JSONL entries to path")
	fmt.Println()
	fmt.Println("Project config: .huespec/config.yaml (formats, output, tunables)")
}
