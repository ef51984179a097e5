// Package main is the entry point for the smartide session engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tuilauncher/smartide/internal/config"
	"github.com/tuilauncher/smartide/internal/logging"
	"github.com/tuilauncher/smartide/internal/session"
	"github.com/tuilauncher/smartide/internal/validate"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	LogLevel   string
	Quiet      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Level = opts.LogLevel
	}
	if opts.Quiet {
		cfg.Quiet = true
	}

	logger := logging.New(cfg.Level, cfg.Quiet)
	defer logger.Sync()

	validator := validate.New(
		validate.WithMaxPathLength(cfg.Validation.MaxPathLength),
		validate.WithAllowedRoots(cfg.Validation.AllowedRoots...),
	)

	coord := session.New(
		session.WithValidator(validator),
		session.WithLogger(logger),
		session.WithSink(&session.WriterSink{W: os.Stdout}),
	)
	defer coord.Cleanup()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		coord.Cleanup()
		os.Exit(0)
	}()

	return repl(coord, os.Stdin, os.Stderr)
}

// repl reads one command per line and dispatches it. Line shapes:
//
//	debug {"command":"start", ...}
//	lsp   {"id":"1","method":"initialize","params":{}}
//	break {"filePath":"...","lineNumber":10,"enabled":true}
//	quit
//
// Responses and events are emitted to the coordinator's sink.
func repl(coord *session.Coordinator, in *os.File, errOut *os.File) int {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		verb, payload, _ := strings.Cut(line, " ")
		payload = strings.TrimSpace(payload)

		switch verb {
		case "debug":
			coord.HandleDebugCommand(payload)
		case "lsp":
			coord.HandleLSPRequest(payload)
		case "break":
			coord.HandleBreakpointToggle(payload)
		case "quit", "exit":
			return 0
		default:
			fmt.Fprintf(errOut, "unknown command %q (want debug, lsp, break, quit)\n", verb)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "Error: reading input: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(opts options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.LoadFromFile(opts.ConfigPath)
	}
	return config.Load()
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Quiet, "quiet", false, "Suppress logs below error")
	flag.BoolVar(&opts.Quiet, "q", false, "Suppress logs below error (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "smartide - simulated debugger and language session engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: smartide [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nInput is one command per line on stdin:\n")
		fmt.Fprintf(os.Stderr, "  debug {\"command\":\"start\"}\n")
		fmt.Fprintf(os.Stderr, "  lsp {\"id\":\"1\",\"method\":\"initialize\",\"params\":{}}\n")
		fmt.Fprintf(os.Stderr, "  break {\"filePath\":\"/data/data/app/Main.java\",\"lineNumber\":10,\"enabled\":true}\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("smartide %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	return opts
}
