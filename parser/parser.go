package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/c360studio/memberlint/lint"
)

func init() {
	DefaultRegistry.Register("typescript",
		[]string{".ts", ".tsx", ".mts", ".cts"},
		func(root string) FileParser {
			return NewParser(root)
		})
	DefaultRegistry.Register("javascript",
		[]string{".js", ".jsx", ".mjs", ".cjs"},
		func(root string) FileParser {
			return NewParser(root)
		})
}

// Parser extracts class declarations and member descriptors from
// TypeScript/JavaScript source files using tree-sitter.
type Parser struct {
	root string
}

// NewParser creates a parser rooted at the given directory. Result paths are
// reported relative to the root when possible.
func NewParser(root string) *Parser {
	return &Parser{root: root}
}

// ParseFile parses a single source file and extracts its class declarations
// with members in physical order.
func (p *Parser) ParseFile(ctx context.Context, filePath string) (*FileResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	relPath, err := filepath.Rel(p.root, filePath)
	if err != nil {
		relPath = filePath
	}

	parser := sitter.NewParser()
	parser.SetLanguage(treeSitterLanguage(filePath))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	defer tree.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result := &FileResult{
		Path:     relPath,
		Hash:     ComputeHash(content),
		Language: detectLanguage(filePath),
	}

	cursor := sitter.NewTreeCursor(tree.RootNode())
	defer cursor.Close()
	p.walkClasses(cursor, content, result)

	return result, nil
}

// ParseDirectory parses all TypeScript/JavaScript files under a directory.
func (p *Parser) ParseDirectory(ctx context.Context, dirPath string) ([]*FileResult, error) {
	var results []*FileResult

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if path != dirPath && skipDir(filepath.Base(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsTargetFile(path) {
			return nil
		}

		result, err := p.ParseFile(ctx, path)
		if err != nil {
			// Skip unparseable files; the caller decides how to report.
			return nil
		}

		results = append(results, result)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return results, nil
}

// walkClasses recursively collects class declarations. Nested classes (class
// expressions inside method bodies) yield their own declarations, since every
// type body is verified independently.
func (p *Parser) walkClasses(cursor *sitter.TreeCursor, source []byte, result *FileResult) {
	node := cursor.CurrentNode()

	switch node.Type() {
	case "class_declaration", "abstract_class_declaration", "class":
		if decl, ok := p.extractClass(node, source); ok {
			result.Classes = append(result.Classes, decl)
		}
	}

	if cursor.GoToFirstChild() {
		for {
			p.walkClasses(cursor, source, result)
			if !cursor.GoToNextSibling() {
				break
			}
		}
		cursor.GoToParent()
	}
}

// extractClass builds a ClassDecl from a class node.
func (p *Parser) extractClass(node *sitter.Node, source []byte) (ClassDecl, bool) {
	body := node.ChildByFieldName("body")
	if body == nil {
		return ClassDecl{}, false
	}

	decl := ClassDecl{
		StartLine: int(node.StartPoint().Row) + 1,
	}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		decl.Name = nodeText(nameNode, source)
	}

	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		switch child.Type() {
		case "method_definition", "abstract_method_signature":
			decl.Members = append(decl.Members, p.extractMethodMember(child, source))
		case "public_field_definition", "field_definition":
			if m, ok := p.extractFieldMember(child, source); ok {
				decl.Members = append(decl.Members, m)
			}
		}
	}

	return decl, true
}

// extractMethodMember builds a descriptor for a method, getter, setter, or
// constructor definition.
func (p *Parser) extractMethodMember(node *sitter.Node, source []byte) lint.MemberDescriptor {
	name := ""
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		name = nodeText(nameNode, source)
	}

	kind := lint.KindMethod
	switch {
	case hasKeyword(node, "get"):
		kind = lint.KindGetter
	case hasKeyword(node, "set"):
		kind = lint.KindSetter
	case name == "constructor":
		kind = lint.KindConstructor
		// Constructors sort by the constructor's own name; TypeScript has
		// only the unnamed constructor.
		name = ""
	}

	m := lint.MemberDescriptor{
		Kind:        kind,
		Name:        name,
		Visibility:  memberVisibility(node, name, source),
		Annotations: memberAnnotations(node, source),
		Line:        int(node.StartPoint().Row) + 1,
		Column:      int(node.StartPoint().Column) + 1,
	}
	return m
}

// extractFieldMember builds a descriptor for a field definition. The name
// lives under the "name" field in the TypeScript grammar and "property" in
// the JavaScript grammar.
func (p *Parser) extractFieldMember(node *sitter.Node, source []byte) (lint.MemberDescriptor, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		nameNode = node.ChildByFieldName("property")
	}
	if nameNode == nil {
		return lint.MemberDescriptor{}, false
	}
	name := nodeText(nameNode, source)

	m := lint.MemberDescriptor{
		Kind:        lint.KindField,
		Name:        name,
		Visibility:  memberVisibility(node, name, source),
		Annotations: memberAnnotations(node, source),
		Line:        int(node.StartPoint().Row) + 1,
		Column:      int(node.StartPoint().Column) + 1,
	}
	return m, true
}

// memberVisibility derives a member's visibility from its accessibility
// modifier or naming convention: private/protected modifiers, `#` names, and
// the `_` prefix convention all count as private.
func memberVisibility(node *sitter.Node, name string, source []byte) lint.Visibility {
	if strings.HasPrefix(name, "#") || strings.HasPrefix(name, "_") {
		return lint.VisibilityPrivate
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "accessibility_modifier" {
			switch nodeText(child, source) {
			case "private", "protected":
				return lint.VisibilityPrivate
			}
		}
	}

	return lint.VisibilityPublic
}

// memberAnnotations collects decorator names on a member, stripped of the `@`
// sigil and call arguments.
func memberAnnotations(node *sitter.Node, source []byte) []string {
	var annotations []string

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "decorator" {
			continue
		}
		if name := decoratorName(child, source); name != "" {
			annotations = append(annotations, name)
		}
	}

	return annotations
}

// decoratorName extracts the identifier of a decorator, handling both bare
// (`@Input`) and call (`@Input('alias')`) forms.
func decoratorName(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			return nodeText(child, source)
		case "call_expression":
			if fn := child.ChildByFieldName("function"); fn != nil {
				return nodeText(fn, source)
			}
		}
	}

	// Fallback for grammar variants: strip the sigil and arguments.
	text := strings.TrimPrefix(nodeText(node, source), "@")
	if idx := strings.Index(text, "("); idx > 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// hasKeyword checks for an anonymous keyword token child (get, set, static).
func hasKeyword(node *sitter.Node, keyword string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == keyword {
			return true
		}
	}
	return false
}

// detectLanguage returns the language identifier for the file.
func detectLanguage(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return "typescript"
	default:
		return "javascript"
	}
}

// treeSitterLanguage returns the tree-sitter language for the file type.
func treeSitterLanguage(filePath string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// IsTargetFile returns true for TypeScript/JavaScript source files.
func IsTargetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs":
		return true
	}
	return false
}

// skipDir reports whether a directory should be excluded from walks.
func skipDir(base string) bool {
	switch base {
	case "node_modules", "dist", "build", "coverage", ".next":
		return true
	}
	return strings.HasPrefix(base, ".")
}

// nodeText returns the text content of a node.
func nodeText(node *sitter.Node, source []byte) string {
	return node.Content(source)
}
