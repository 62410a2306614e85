package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/acc-bball/internal/app"
	"github.com/riskibarqy/acc-bball/internal/config"
	"github.com/riskibarqy/acc-bball/internal/interfaces/console"
	"github.com/riskibarqy/acc-bball/internal/observability"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
	"go.opentelemetry.io/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	cmd, args := "exercise", []string(nil)
	if len(os.Args) > 1 {
		cmd, args = strings.ToLower(strings.TrimSpace(os.Args[1])), os.Args[2:]
	}

	if err := run(cmd, args, cfg, logger); err != nil {
		logger.Error("bball failed", "command", cmd, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cmd string, args []string, cfg config.Config, logger *logging.Logger) error {
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return nil
	}

	// sql only renders statements and never opens a connection.
	if cmd == "sql" {
		if len(args) == 0 {
			return fmt.Errorf("sql requires a query number")
		}
		req, err := parseQuery(args[0], args[1:])
		if err != nil {
			return err
		}
		return console.WriteSQL(os.Stdout, req)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown := observability.InitUptrace(cfg, logger)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("flush traces failed", "error", err)
		}
	}()

	ctx, span := otel.Tracer("acc-bball/cmd/bball").Start(ctx, "bball."+cmd)
	defer span.End()

	a, err := app.New(ctx, cfg, logger, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close database failed", "error", err)
		}
	}()

	switch cmd {
	case "exercise":
		return a.Exercise(ctx)
	case "setup":
		return a.Setup(ctx)
	case "drop":
		return a.Schema.DropTables(ctx)
	case "create":
		return a.Schema.CreateTables(ctx)
	case "load":
		_, err := a.Loader.LoadFromSource(ctx)
		return err
	case "query1", "query2", "query3", "query4", "query5":
		req, err := parseQuery(strings.TrimPrefix(cmd, "query"), args)
		if err != nil {
			return err
		}
		return a.Reports.Run(ctx, req)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseQuery(raw string, args []string) (console.Request, error) {
	query, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return console.Request{}, fmt.Errorf("invalid query number %q: %w", raw, err)
	}
	return console.ParseRequest(query, args)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s [command] [args]\n", name)
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  exercise                 reset tables, load data files, run the reference reports (default)")
	fmt.Fprintln(os.Stderr, "  setup                    reset tables and load data files")
	fmt.Fprintln(os.Stderr, "  drop | create | load     run a single setup step")
	fmt.Fprintln(os.Stderr, "  query1 [stat=min:max]    players within stat ranges (mpg ppg rpg apg spg bpg)")
	fmt.Fprintln(os.Stderr, "  query2 <color>           teams wearing a color")
	fmt.Fprintln(os.Stderr, "  query3 <team>            players of a team by points per game")
	fmt.Fprintln(os.Stderr, "  query4 <state> <color>   players by team state and color")
	fmt.Fprintln(os.Stderr, "  query5 <wins>            players on teams with more wins")
	fmt.Fprintln(os.Stderr, "  sql <1-5> [args]         print a report's SQL without running it")
	fmt.Fprintf(os.Stderr, "example:\n  %s query1 mpg=35:40 spg=0.5:1.7\n", name)
}
