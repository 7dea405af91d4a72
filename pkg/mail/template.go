package mail

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/aymerick/raymond"
)

//go:embed templates/*.hbs
var templateFS embed.FS

// Templates renders the embedded Handlebars templates. Values inserted with
// {{name}} are HTML-escaped.
type Templates struct {
	mu    sync.RWMutex
	cache map[string]*raymond.Template
}

// NewTemplates creates an empty template cache.
func NewTemplates() *Templates {
	return &Templates{cache: make(map[string]*raymond.Template)}
}

// Render executes templates/<name>.hbs with the given data.
func (t *Templates) Render(name string, data map[string]any) (string, error) {
	tpl, err := t.load(name)
	if err != nil {
		return "", err
	}
	out, err := tpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("mail: render %s: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}

func (t *Templates) load(name string) (*raymond.Template, error) {
	t.mu.RLock()
	tpl, ok := t.cache[name]
	t.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	src, err := templateFS.ReadFile(path.Join("templates", name+".hbs"))
	if err != nil {
		return nil, fmt.Errorf("mail: template %s not found: %w", name, err)
	}
	tpl, err = raymond.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("mail: parse %s: %w", name, err)
	}

	t.mu.Lock()
	t.cache[name] = tpl
	t.mu.Unlock()
	return tpl, nil
}
