package handlers

import (
	"net/http"

	"chitragupta-dashboard/pkg/navigation"

	"github.com/gin-gonic/gin"
)

// NavigationHandler serves the sidebar model to clients that render the
// shell themselves.
type NavigationHandler struct {
	navigation *navigation.Model
}

func NewNavigationHandler(nav *navigation.Model) *NavigationHandler {
	return &NavigationHandler{navigation: nav}
}

type navigationResponse struct {
	Location string             `json:"location"`
	Items    []navigation.State `json:"items"`
	Active   *string            `json:"active"`
}

// GetNavigation returns every entry annotated for the location given in the
// "path" query parameter. Without it nothing is active.
func (h *NavigationHandler) GetNavigation(c *gin.Context) {
	location := c.Query("path")

	resp := navigationResponse{
		Location: location,
		Items:    h.navigation.States(location),
	}
	if entry, ok := h.navigation.Active(location); ok {
		resp.Active = &entry.Path
	}
	if resp.Items == nil {
		resp.Items = []navigation.State{}
	}

	c.JSON(http.StatusOK, resp)
}
