package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"chitragupta-dashboard/internal/metrics"
	"chitragupta-dashboard/internal/middleware"
	"chitragupta-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	layoutTemplate = "base.html"
	errorTemplate  = "error.html"
)

func (h *ShellHandler) basePageData(title string, extra gin.H) gin.H {
	data := gin.H{
		"Title": fmt.Sprintf("%s - %s", title, h.config.SiteName),
		"Site": gin.H{
			"Name": h.config.SiteName,
		},
		"User": userData{
			Name:  h.config.AdminName,
			Email: h.config.AdminEmail,
		},
		"SearchPlaceholder": "Search...",
		"Heading":           title,
	}

	for k, v := range extra {
		data[k] = v
	}

	return data
}

func (h *ShellHandler) renderTemplate(c *gin.Context, status int, templateName, title string, extra gin.H) {
	data := h.basePageData(title, extra)
	h.renderWithLayout(c, status, layoutTemplate, templateName+".html", data)
}

func (h *ShellHandler) renderWithLayout(c *gin.Context, status int, layout, content string, data gin.H) {
	h.setNavigationState(c, data)
	log := logger.FromContext(c.Request.Context())

	contentTmpl := h.templates.Lookup(content)
	if contentTmpl == nil {
		log.WithField("template", content).Error("Content template not found")
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Template not found")
		return
	}

	buf, err := h.executeTemplate(contentTmpl, data)
	if err != nil {
		log.WithError(err).WithField("template", content).Error("Failed to render content")
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Failed to render content")
		return
	}

	data["Content"] = template.HTML(buf)

	layoutTmpl := h.templates.Lookup(layout)
	if layoutTmpl == nil {
		log.WithField("template", layout).Error("Layout template not found")
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Template not found")
		return
	}

	output, err := h.executeTemplate(layoutTmpl, data)
	if err != nil {
		log.WithError(err).WithField("template", layout).Error("Failed to render layout")
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Failed to render layout")
		return
	}

	metrics.ObserveShellRender(getString(data, "ActivePath"))
	c.Data(status, "text/html; charset=utf-8", output)
}

// setNavigationState annotates the sidebar entries for the current location.
// The location is compared verbatim; no entry is active when it is missing.
func (h *ShellHandler) setNavigationState(c *gin.Context, data gin.H) {
	location := middleware.CurrentLocation(c)

	data["Location"] = location
	data["Navigation"] = h.navigation.States(location)
	data["ActivePath"] = ""
	data["ActiveNav"] = ""

	if entry, ok := h.navigation.Active(location); ok {
		data["ActivePath"] = entry.Path
		data["ActiveNav"] = entry.Label
	}
}

func (h *ShellHandler) renderError(c *gin.Context, status int, title, message string) {
	data := gin.H{"Title": title, "Message": message}

	if tmpl := h.templates.Lookup(errorTemplate); tmpl != nil {
		output, err := h.executeTemplate(tmpl, data)
		if err == nil {
			c.Data(status, "text/html; charset=utf-8", output)
			return
		}
		logger.Error(err, "Failed to render error page", nil)
	}

	c.String(status, "%s: %s", title, message)
}

func getString(data gin.H, key string) string {
	if value, ok := data[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func (h *ShellHandler) executeTemplate(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
