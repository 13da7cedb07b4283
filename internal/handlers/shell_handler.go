package handlers

import (
	"fmt"
	"html/template"

	"chitragupta-dashboard/internal/config"
	"chitragupta-dashboard/pkg/logger"
	"chitragupta-dashboard/pkg/navigation"
)

// ShellHandler renders pages inside the dashboard shell: sidebar, header and
// main content region.
type ShellHandler struct {
	templates  *template.Template
	config     *config.Config
	navigation *navigation.Model
	pages      map[string]page
}

type page struct {
	template string
	title    string
}

type userData struct {
	Name  string
	Email string
}

func NewShellHandler(cfg *config.Config, nav *navigation.Model, templates *template.Template) (*ShellHandler, error) {
	if templates == nil {
		return nil, fmt.Errorf("templates are required")
	}
	if nav == nil {
		return nil, fmt.Errorf("navigation model is required")
	}
	if cfg == nil {
		cfg = config.New()
	}

	h := &ShellHandler{
		templates:  templates,
		config:     cfg,
		navigation: nav,
		pages: map[string]page{
			"/":             {template: "dashboard", title: "Dashboard"},
			"/repositories": {template: "repositories", title: "Repositories"},
			"/secrets":      {template: "secrets", title: "Secrets"},
		},
	}

	for _, path := range h.UnroutedPaths() {
		logger.Warn("Navigation entry has no page and will render the not-found shell", map[string]interface{}{
			"path": path,
		})
	}

	return h, nil
}

// UnroutedPaths lists navigation entry paths that have no content page.
func (h *ShellHandler) UnroutedPaths() []string {
	var paths []string
	for _, entry := range h.navigation.Entries() {
		if _, ok := h.pages[entry.Path]; !ok {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// PagePaths lists the locations served by a content page.
func (h *ShellHandler) PagePaths() []string {
	paths := make([]string, 0, len(h.pages))
	for _, entry := range h.navigation.Entries() {
		if _, ok := h.pages[entry.Path]; ok {
			paths = append(paths, entry.Path)
		}
	}
	for p := range h.pages {
		if _, ok := h.navigation.Lookup(p); !ok {
			paths = append(paths, p)
		}
	}
	return paths
}
