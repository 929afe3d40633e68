package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveTargets expands target patterns to concrete files and directories.
// Supports single-level (*) and recursive (**) wildcards.
//
// Examples:
//   - "./src/*" → ["./src/app", "./src/lib", ...]
//   - "./app.ts" → ["./app.ts"]
//   - "./**/components" → all components directories recursively
func ResolveTargets(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve target %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	return resolved, nil
}

// resolvePattern expands a single target pattern to absolute paths.
func resolvePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}

		if _, err := os.Stat(absPath); err != nil {
			return nil, err
		}

		return []string{absPath}, nil
	}

	absPattern, err := makeAbsolutePattern(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no paths match pattern: %s", pattern)
	}

	return matches, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// makeAbsolutePattern converts a relative pattern to absolute, preserving the
// glob suffix.
func makeAbsolutePattern(pattern string) (string, error) {
	globIdx := -1
	for i, c := range pattern {
		if c == '*' || c == '?' || c == '[' {
			globIdx = i
			break
		}
	}

	if globIdx == -1 {
		return filepath.Abs(pattern)
	}

	// Split at the last separator before the first glob character. A pattern
	// that starts with a glob is anchored at the working directory.
	prefix := pattern[:globIdx]
	lastSep := strings.LastIndex(prefix, string(filepath.Separator))
	if sep := strings.LastIndex(prefix, "/"); sep > lastSep {
		lastSep = sep
	}

	dirPart, globPart := ".", pattern
	if lastSep >= 0 {
		dirPart, globPart = pattern[:lastSep], pattern[lastSep+1:]
	}

	absDir, err := filepath.Abs(dirPart)
	if err != nil {
		return "", err
	}

	return filepath.Join(absDir, filepath.FromSlash(globPart)), nil
}
