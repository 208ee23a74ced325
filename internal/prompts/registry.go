package prompts

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/refine/*.tmpl templates/architect/*.tmpl templates/backend/*.tmpl templates/frontend/*.tmpl templates/review/*.tmpl
var templateFS embed.FS

// registry holds parsed templates and provides thread-safe access.
type registry struct {
	mu        sync.RWMutex
	templates map[PromptID]*template.Template
}

// globalRegistry is the singleton registry instance.
//
//nolint:gochecknoglobals // singleton pattern for template registry
var globalRegistry = &registry{
	templates: make(map[PromptID]*template.Template),
}

// init loads all templates at startup.
//
//nolint:gochecknoinits // required to preload embedded templates
func init() {
	if err := globalRegistry.loadAll(); err != nil {
		// Templates are embedded, so this should never fail.
		// If it does, it's a compile-time bug we want to know about.
		panic(fmt.Sprintf("failed to load embedded templates: %v", err))
	}
}

// loadAll walks the embedded filesystem and parses every template.
func (r *registry) loadAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		// templates/refine/system.tmpl -> refine/system
		id := PromptID(strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".tmpl"))

		tmpl, err := template.New(string(id)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		r.templates[id] = tmpl
		return nil
	})
}

// get retrieves a parsed template by ID.
func (r *registry) get(id PromptID) (*template.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return tmpl, nil
}
