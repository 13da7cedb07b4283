package handlers

import (
	"net/http"

	"chitragupta-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RenderPage serves the content page registered for the current location and
// falls back to the not-found page.
func (h *ShellHandler) RenderPage(c *gin.Context) {
	location := middleware.CurrentLocation(c)

	p, ok := h.pages[location]
	if !ok {
		h.RenderNotFound(c)
		return
	}

	title := p.title
	if entry, found := h.navigation.Lookup(location); found {
		title = entry.Label
	}

	h.renderTemplate(c, http.StatusOK, p.template, title, nil)
}

func (h *ShellHandler) RenderNotFound(c *gin.Context) {
	h.renderTemplate(c, http.StatusNotFound, "not_found", "Not Found", gin.H{
		"Heading":       "Page not found",
		"RequestedPath": middleware.CurrentLocation(c),
	})
}
