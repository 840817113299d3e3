package controllers

import (
	"html/template"
	"net/http"

	"inkpress/app/middleware"
	"inkpress/app/models"
	"inkpress/app/sessions"
	"inkpress/app/views"

	"github.com/rs/zerolog"
)

// viewData is the envelope every template receives.
type viewData struct {
	CurrentUser *models.User
	Flash       string
	Data        interface{}
}

// Renderer owns the parsed templates and the shared render path.
type Renderer struct {
	templates map[string]*template.Template
	log       zerolog.Logger
}

var funcs = template.FuncMap{
	// Post bodies are rich text authored by the admin; render them as-is.
	"safeHTML": func(s string) template.HTML { return template.HTML(s) },
}

// NewRenderer parses the embedded views.
func NewRenderer(log zerolog.Logger) *Renderer {
	pages := []string{"home", "post", "post_form", "register", "login", "about", "contact"}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		templates[page] = template.Must(
			template.New(page).Funcs(funcs).ParseFS(views.FS, "layout.html", page+".html"))
	}
	return &Renderer{templates: templates, log: log}
}

// Render executes the named page inside the layout, attaching the current
// user and any pending flash notice.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	rn.render(w, r, page, data, sessions.TakeFlash(w, r))
}

// RenderNotice is Render with a notice shown on this response instead of
// being queued for the next one.
func (rn *Renderer) RenderNotice(w http.ResponseWriter, r *http.Request, page string, data interface{}, notice string) {
	rn.render(w, r, page, data, notice)
}

func (rn *Renderer) render(w http.ResponseWriter, r *http.Request, page string, data interface{}, flash string) {
	env := viewData{
		CurrentUser: middleware.CurrentUser(r),
		Flash:       flash,
		Data:        data,
	}
	if err := rn.templates[page].ExecuteTemplate(w, "layout", env); err != nil {
		rn.log.Error().Err(err).Str("page", page).Msg("template error")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
