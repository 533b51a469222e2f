package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/app/services/forms"
	"medicare-frontend/internal/pkg/constvars"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"isSelect":   func(field forms.Field) bool { return field.Type == forms.FieldSelect },
	"isTextarea": func(field forms.Field) bool { return field.Type == forms.FieldTextarea },
	"itemPath": func(view string, id models.ID) string {
		return fmt.Sprintf("/views/%s/items/%s", view, url.PathEscape(id.String()))
	},
	// the register page offers both role-specific inputs at once
	"roleSpecific": func(name string) bool { return name == "specialization" || name == "address" },
}

// Renderer executes one template set per page, each joined with the layout.
type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	renderer := &Renderer{pages: make(map[string]*template.Template, len(pages)), log: logger}
	for _, page := range pages {
		parsed, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/fields.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		renderer.pages[page] = parsed
	}
	return renderer, nil
}

// Render writes page with status. Nothing is written until the template has
// executed, so a template error still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.log.Error("Renderer.Render unknown page", zap.String(constvars.LoggingViewKey, page))
		http.Error(w, constvars.ErrClientOperationFailed, http.StatusInternalServerError)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		r.log.Error("Renderer.Render failed",
			zap.String(constvars.LoggingViewKey, page),
			zap.Error(err),
		)
		http.Error(w, constvars.ErrClientOperationFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	body.WriteTo(w)
}
