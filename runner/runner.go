// Package runner wires the parser and the lint core together: it resolves
// target paths, parses matching source files, verifies every class
// declaration independently, and collects findings into a report.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/memberlint/config"
	"github.com/c360studio/memberlint/lint"
	"github.com/c360studio/memberlint/parser"
	"github.com/c360studio/memberlint/report"
)

// Runner checks source files against a fixed configuration. The group order
// is built once at construction, so an invalid configuration fails the run
// before any member is processed.
type Runner struct {
	cfg    *config.Config
	order  lint.GroupOrder
	logger *slog.Logger

	// Per-extension parser cache; parsers come from the registry.
	parsers map[string]parser.FileParser
	root    string
}

// New creates a Runner for the given configuration. An unknown or duplicate
// group key in the configured order is returned as *lint.ConfigError.
func New(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	order, err := lint.NewGroupOrder(cfg.Lint.Order)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	root, err := os.Getwd()
	if err != nil {
		root = "."
	}

	return &Runner{
		cfg:     cfg,
		order:   order,
		logger:  logger,
		parsers: make(map[string]parser.FileParser),
		root:    root,
	}, nil
}

// Order returns the active group order.
func (r *Runner) Order() lint.GroupOrder {
	return r.order
}

// Run resolves targets, lints every matching file, and returns the report.
// Files that fail to parse are logged and skipped; they never fail the run.
func (r *Runner) Run(ctx context.Context, targets []string) (*report.Report, error) {
	if len(targets) == 0 {
		targets = []string{"."}
	}

	resolved, err := ResolveTargets(targets)
	if err != nil {
		return nil, err
	}

	files, err := r.collectFiles(resolved)
	if err != nil {
		return nil, err
	}

	rep := report.New()
	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := r.parseFile(ctx, path)
		if err != nil {
			r.logger.Warn("Failed to parse file",
				"path", path,
				"error", err)
			continue
		}

		rep.FilesChecked++
		rep.ClassesChecked += len(result.Classes)
		rep.Add(r.VerifyFile(result)...)
	}

	r.logger.Debug("Run complete",
		"files", rep.FilesChecked,
		"classes", rep.ClassesChecked,
		"findings", len(rep.Findings))

	return rep, nil
}

// VerifyFile runs the core against every class of an already-parsed file and
// converts wrong verdicts into findings. Each class is verified from a clean
// state.
func (r *Runner) VerifyFile(result *parser.FileResult) []report.Finding {
	var findings []report.Finding

	for _, class := range result.Classes {
		verdicts := lint.VerifyMembers(class.Members, r.order, r.cfg.Lint.Alphabetize)
		for _, v := range verdicts {
			findings = append(findings, report.FindingsFromVerdict(result.Path, class.Name, v)...)
		}
	}

	return findings
}

// parseFile creates (or reuses) the registry parser for the file's extension.
func (r *Runner) parseFile(ctx context.Context, path string) (*parser.FileResult, error) {
	ext := strings.ToLower(filepath.Ext(path))

	p, ok := r.parsers[ext]
	if !ok {
		var err error
		p, err = parser.DefaultRegistry.CreateParserForExtension(ext, r.root)
		if err != nil {
			return nil, err
		}
		r.parsers[ext] = p
	}

	return p.ParseFile(ctx, path)
}

// collectFiles expands resolved targets into the list of files to lint,
// applying include/exclude patterns against root-relative paths.
func (r *Runner) collectFiles(targets []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if seen[path] {
			return
		}
		if !r.selectFile(path) {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat target: %w", err)
		}

		if !info.IsDir() {
			if parser.IsTargetFile(target) {
				add(target)
			}
			continue
		}

		err = filepath.Walk(target, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != target && skipDir(filepath.Base(path)) {
					return filepath.SkipDir
				}
				return nil
			}
			if parser.IsTargetFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk target: %w", err)
		}
	}

	return files, nil
}

// selectFile applies the configured include/exclude patterns.
func (r *Runner) selectFile(path string) bool {
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	if len(r.cfg.Lint.Include) > 0 {
		included := false
		for _, pattern := range r.cfg.Lint.Include {
			if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}

	for _, pattern := range r.cfg.Lint.Exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return false
		}
	}

	return true
}

// skipDir reports whether a directory is excluded from walks.
func skipDir(base string) bool {
	switch base {
	case "node_modules", "dist", "build", "coverage", ".next":
		return true
	}
	return strings.HasPrefix(base, ".")
}
