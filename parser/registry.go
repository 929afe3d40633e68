package parser

import (
	"fmt"
	"sync"
)

// ParserFactory creates a FileParser rooted at the given directory.
type ParserFactory func(root string) FileParser

// Registry maintains language parsers keyed by name and file extension.
// Thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]ParserFactory // name → factory
	extMap  map[string]string        // extension → parser name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]ParserFactory),
		extMap:  make(map[string]string),
	}
}

// Register adds a parser factory for the given extensions. Extensions include
// the leading dot. The first registration wins on extension conflicts.
func (r *Registry) Register(name string, extensions []string, factory ParserFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parsers[name] = factory
	for _, ext := range extensions {
		if _, exists := r.extMap[ext]; !exists {
			r.extMap[ext] = name
		}
	}
}

// ParserName returns the parser name registered for a file extension.
func (r *Registry) ParserName(ext string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.extMap[ext]
	return name, ok
}

// CreateParser instantiates a parser by name.
func (r *Registry) CreateParser(name, root string) (FileParser, error) {
	r.mu.RLock()
	factory, ok := r.parsers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("parser not registered: %s", name)
	}
	return factory(root), nil
}

// CreateParserForExtension creates a parser for the given file extension.
func (r *Registry) CreateParserForExtension(ext, root string) (FileParser, error) {
	name, ok := r.ParserName(ext)
	if !ok {
		return nil, fmt.Errorf("no parser registered for extension: %s", ext)
	}
	return r.CreateParser(name, root)
}

// Extensions returns all registered file extensions.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	extensions := make([]string, 0, len(r.extMap))
	for ext := range r.extMap {
		extensions = append(extensions, ext)
	}
	return extensions
}

// DefaultRegistry is the global parser registry. Language parsers register
// themselves via init().
var DefaultRegistry = NewRegistry()
