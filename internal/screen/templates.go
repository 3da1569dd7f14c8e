package screen

import (
	"fmt"
	"io"
	"io/fs"
	"text/template"

	"github.com/erazemk/freshkeeper/internal/i18n"
	"github.com/erazemk/freshkeeper/internal/model"
	"github.com/erazemk/freshkeeper/internal/nav"
	"github.com/erazemk/freshkeeper/internal/theme"
	webembed "github.com/erazemk/freshkeeper/web"
)

// pages maps each screen to its template file.
var pages = map[nav.Screen]string{
	nav.ScreenLogin:    "login.tmpl",
	nav.ScreenHome:     "home.tmpl",
	nav.ScreenProducts: "products.tmpl",
	nav.ScreenSettings: "settings.tmpl",
}

// shared templates parsed into every page.
var shared = []string{"layout.tmpl", "cards.tmpl"}

// Renderer holds parsed screen templates.
type Renderer struct {
	templates map[nav.Screen]*template.Template
	tr        *i18n.Translator
}

// FuncMap returns the template function map.
func FuncMap(tr *i18n.Translator) template.FuncMap {
	return template.FuncMap{
		"t":     tr.T,
		"badge": theme.Badge,
		"loc": func(l model.Location) string {
			return tr.T("location." + string(l))
		},
	}
}

// NewRenderer parses all screen templates with the layout.
func NewRenderer(tr *i18n.Translator) (*Renderer, error) {
	tfs := webembed.TemplatesFS()

	r := &Renderer{templates: make(map[nav.Screen]*template.Template), tr: tr}

	for screen, page := range pages {
		tmpl := template.New(page).Funcs(FuncMap(tr))
		for _, name := range append(append([]string{}, shared...), page) {
			data, err := fs.ReadFile(tfs, name)
			if err != nil {
				return nil, fmt.Errorf("reading template %s: %w", name, err)
			}
			if tmpl, err = tmpl.Parse(string(data)); err != nil {
				return nil, fmt.Errorf("parsing template %s for %s: %w", name, page, err)
			}
		}
		r.templates[screen] = tmpl
	}

	return r, nil
}

// Translator returns the translator used by the templates.
func (r *Renderer) Translator() *i18n.Translator {
	return r.tr
}

// Render writes a screen to w.
func (r *Renderer) Render(w io.Writer, screen nav.Screen, data any) error {
	tmpl, ok := r.templates[screen]
	if !ok {
		return fmt.Errorf("no template for screen %q", screen)
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", screen, err)
	}
	return nil
}
