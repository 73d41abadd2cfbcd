package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Templates returns the page templates compiled into the binary.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Pages renders the html/template page bodies. In dev mode the templates are re-parsed
// on every render so edits show up without a restart.
type Pages struct {
	fsys fs.FS
	dev  bool

	mu    sync.RWMutex
	cache *template.Template
}

// NewPages parses every .tmpl file in fsys. Pass a nil fsys to use the embedded templates.
func NewPages(fsys fs.FS, dev bool) (*Pages, error) {
	if fsys == nil {
		fsys = Templates()
	}
	p := &Pages{fsys: fsys, dev: dev}
	t, err := parseTemplates(fsys)
	if err != nil {
		return nil, err
	}
	p.cache = t
	return p, nil
}

// Page returns the named template as a component. Parse or execution failures surface as
// render errors so an ErrorBoundary can contain them.
func (p *Pages) Page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, err := p.templates()
		if err != nil {
			return err
		}
		page := t.Lookup(name)
		if page == nil {
			return fmt.Errorf("views: template %q not found", name)
		}
		return templ.FromGoHTML(page, data).Render(ctx, w)
	})
}

func (p *Pages) templates() (*template.Template, error) {
	if p.dev {
		t, err := parseTemplates(p.fsys)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.cache = t
		p.mu.Unlock()
		return t, nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cache, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}
	t, err := template.New("_root").Funcs(funcMap).ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("views: parse templates: %w", err)
	}
	return t, nil
}
