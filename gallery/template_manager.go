package gallery

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/abiosoft/mold"
)

const layoutTemplate = "layouts/layout.html"

// TemplateManager renders pages inside the shared layout using mold
type TemplateManager struct {
	engine mold.Engine
}

// NewTemplateManager parses every template of fsys. Pages are rendered
// inside layouts/layout.html.
func NewTemplateManager(fsys fs.FS, funcMap template.FuncMap) (*TemplateManager, error) {
	engine, err := mold.New(fsys,
		mold.WithLayout(layoutTemplate),
		mold.WithFuncMap(funcMap),
	)
	if err != nil {
		return nil, fmt.Errorf("while parsing templates: %w", err)
	}
	return &TemplateManager{engine: engine}, nil
}

// Render renders a page template such as "pages/index.html"
func (tm *TemplateManager) Render(w io.Writer, pageName string, data any) error {
	return tm.engine.Render(w, pageName, data)
}
