package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/voxnote/internal/content"
	"github.com/nfrund/voxnote/internal/rendering"
	"github.com/nfrund/voxnote/internal/view"
	"github.com/nfrund/voxnote/web/src/templates/components"
	"github.com/nfrund/voxnote/web/src/templates/pages"
)

// LandingHandler serves the landing page and its htmx fragments.
type LandingHandler struct {
	content  content.Source
	renderer rendering.Renderer
	now      func() time.Time
}

// NewLandingHandler creates a LandingHandler. The content is read from source
// on every request, so a reloaded override file shows up immediately.
func NewLandingHandler(source content.Source, renderer rendering.Renderer) *LandingHandler {
	if source == nil {
		source = content.Fixed(nil)
	}
	return &LandingHandler{content: source, renderer: renderer, now: time.Now}
}

func (h *LandingHandler) landing() *content.Landing {
	if l := h.content.Current(); l != nil {
		return l
	}
	return &content.Landing{}
}

// Index renders the full page. A page load always starts from the zero UiState.
func (h *LandingHandler) Index(c echo.Context) error {
	page := pages.Landing(pages.LandingData{
		Content: h.landing(),
		State:   view.UiState{},
		Year:    h.now().Year(),
	})
	return h.renderer.RenderPage(c, http.StatusOK, view.AdaptGomponentToTempl(page))
}

// NavFragment re-renders the navigation for the UiState carried in the query.
func (h *LandingHandler) NavFragment(c echo.Context) error {
	state := view.ParseUiState(c.QueryParams())
	fragment := components.NavFragment(h.landing().Anchors, state)
	return h.renderer.RenderPage(c, http.StatusOK, view.AdaptGomponentToTempl(fragment))
}

// Health reports that the process is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
