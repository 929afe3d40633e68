// Package main provides the memberlint binary entry point.
// Memberlint checks the declaration order of class members in
// TypeScript/JavaScript sources against a configurable group order.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/memberlint/config"
	"github.com/c360studio/memberlint/parser"
	"github.com/c360studio/memberlint/report"
	"github.com/c360studio/memberlint/runner"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "memberlint"
)

// errFindings signals a completed run that found violations.
var errFindings = errors.New("violations found")

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath  string
		format      string
		alphabetize bool
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "memberlint [paths...]",
		Short: "Class member ordering linter",
		Long: `Memberlint checks that class members in TypeScript/JavaScript sources
appear in a configurable canonical order (fields before getters before
setters before constructors before methods, public before private) and,
optionally, that members within a group are alphabetized.

Framework-annotated members (@Input, @Output, @HostBinding, ...) are
classified into dedicated groups and checked only when those groups are
listed in the configured order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(configPath, format, alphabetize, logLevel)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cfg, logger, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&format, "format", "", "Output format (text, json)")
	cmd.PersistentFlags().BoolVar(&alphabetize, "alphabetize", false, "Require alphabetical order within groups")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "watch [path]",
		Short: "Watch sources and re-lint on change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(configPath, format, alphabetize, logLevel)
			if err != nil {
				return err
			}
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runWatch(cfg, logger, root)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup configures logging and loads the layered configuration, applying
// command-line overrides on top.
func setup(configPath, format string, alphabetize bool, logLevel string) (*config.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.NewLoader(logger).Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if format != "" {
		cfg.Output.Format = format
	}
	if alphabetize {
		cfg.Lint.Alphabetize = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// runCheck lints the given paths once and writes the report to stdout.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger, targets []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := runner.New(cfg, logger)
	if err != nil {
		return err
	}

	rep, err := r.Run(ctx, targets)
	if err != nil {
		return err
	}

	if err := writeReport(cfg, rep); err != nil {
		return err
	}

	if rep.HasFindings() {
		return errFindings
	}
	return nil
}

// runWatch lints once, then re-lints files as they change until interrupted.
func runWatch(cfg *config.Config, logger *slog.Logger, root string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, err := runner.New(cfg, logger)
	if err != nil {
		return err
	}

	watcher, err := parser.NewWatcher(parser.WatcherConfig{
		Root:          root,
		DebounceDelay: 200 * time.Millisecond,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Initial pass over everything under the root.
	results, err := watcher.IndexDirectory(ctx)
	if err != nil {
		return fmt.Errorf("initial lint: %w", err)
	}

	rep := report.New()
	for _, result := range results {
		rep.FilesChecked++
		rep.ClassesChecked += len(result.Classes)
		rep.Add(r.VerifyFile(result)...)
	}
	if err := rep.WriteText(os.Stdout); err != nil {
		return err
	}

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			logger.Warn("Error stopping watcher", "error", err)
		}
	}()

	logger.Info("Watching for changes", "root", root)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped")
			return nil
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			handleWatchEvent(r, logger, event)
		}
	}
}

// handleWatchEvent re-lints a changed file and prints its findings.
func handleWatchEvent(r *runner.Runner, logger *slog.Logger, event parser.WatchEvent) {
	if event.Error != nil {
		logger.Warn("Watch event error",
			"path", event.Path,
			"error", event.Error)
		return
	}

	switch event.Operation {
	case parser.OpCreate, parser.OpModify:
		if event.Result == nil {
			return
		}
		findings := r.VerifyFile(event.Result)
		if len(findings) == 0 {
			logger.Info("Clean", "path", event.Path)
			return
		}
		for _, f := range findings {
			fmt.Printf("%s:%d:%d: %s [%s]\n", f.File, f.Line, f.Column, f.Message, f.Rule)
		}
	case parser.OpDelete:
		logger.Debug("File deleted", "path", event.Path)
	}
}

// writeReport renders the report in the configured format.
func writeReport(cfg *config.Config, rep *report.Report) error {
	if cfg.Output.Format == config.FormatJSON {
		return rep.WriteJSON(os.Stdout)
	}
	return rep.WriteText(os.Stdout)
}
