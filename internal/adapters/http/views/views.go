// Package views renders the HTML pages of the agreement form. Templates are
// embedded in the binary and executed through a goview engine backed by the
// embedded filesystem.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/foolin/goview"

	"github.com/jsamuelsen11/agreement-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Engine)(nil)

// Template names understood by Engine.Render.
const (
	PageAgreementForm = "agreement_form"
)

const (
	templateRoot = "templates"
	templateExt  = ".html"
	masterLayout = "layouts/master"
)

//go:embed templates
var templateFS embed.FS

// Config controls template caching. DisableCache re-parses templates on every
// render and is meant for local development.
type Config struct {
	DisableCache bool
}

// Engine renders embedded page templates inside the master layout.
type Engine struct {
	view *goview.ViewEngine
}

// New creates an Engine reading templates from the embedded filesystem.
func New(cfg Config) *Engine {
	view := goview.New(goview.Config{
		Root:         templateRoot,
		Extension:    templateExt,
		Master:       masterLayout,
		Funcs:        funcs(),
		DisableCache: cfg.DisableCache,
		Delims:       goview.Delims{Left: "{{", Right: "}}"},
	})
	view.SetFileHandler(embeddedFile(templateFS))
	return &Engine{view: view}
}

// Render writes the named page with the given status code. The Content-Type
// is set to text/html unless the caller already set one.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data any) error {
	if err := e.view.Render(w, status, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (e *Engine) Name() string {
	return "views"
}

// HealthCheck renders an empty form page to verify the embedded templates
// parse and execute.
func (e *Engine) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.view.RenderWriter(io.Discard, PageAgreementForm, NewFormPage(nil, nil)); err != nil {
		return fmt.Errorf("rendering %s: %w", PageAgreementForm, err)
	}
	return nil
}

func embeddedFile(fsys fs.FS) goview.FileHandler {
	return func(config goview.Config, tplFile string) (string, error) {
		b, err := fs.ReadFile(fsys, path.Join(config.Root, tplFile+config.Extension))
		if err != nil {
			return "", fmt.Errorf("reading template %s: %w", tplFile, err)
		}
		return string(b), nil
	}
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"label": Label,
	}
}
