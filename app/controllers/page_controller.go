package controllers

import "net/http"

// PageController serves the static informational pages.
type PageController struct {
	renderer *Renderer
}

// NewPageController creates a new PageController
func NewPageController(renderer *Renderer) *PageController {
	return &PageController{renderer: renderer}
}

// About renders the about page.
func (pg *PageController) About(w http.ResponseWriter, r *http.Request) {
	pg.renderer.Render(w, r, "about", nil)
}

// Contact renders the contact page.
func (pg *PageController) Contact(w http.ResponseWriter, r *http.Request) {
	pg.renderer.Render(w, r, "contact", nil)
}
