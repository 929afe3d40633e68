// Package parser extracts class declarations and ordered member descriptors
// from TypeScript and JavaScript sources using tree-sitter. It is the
// source-analysis collaborator of the lint package: it owns everything about
// locating members in files, and hands the core plain descriptor sequences.
package parser

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/c360studio/memberlint/lint"
)

// ClassDecl is one type declaration with its members in physical order.
type ClassDecl struct {
	// Name of the class, empty for anonymous class expressions.
	Name string

	// StartLine is the 1-based line of the declaration.
	StartLine int

	// Members lists the class body members as they appear in source.
	Members []lint.MemberDescriptor
}

// FileResult is the outcome of parsing a single source file.
type FileResult struct {
	// Path is relative to the configured root when possible.
	Path string

	// Hash is a content hash for change detection.
	Hash string

	// Language is the detected language identifier.
	Language string

	// Classes lists the type declarations found, in source order.
	Classes []ClassDecl
}

// FileParser parses a single source file into class declarations.
type FileParser interface {
	ParseFile(ctx context.Context, filePath string) (*FileResult, error)
}

// ComputeHash computes a short SHA256 content hash.
func ComputeHash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:8])
}
