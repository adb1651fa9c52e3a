package pages

import (
	"github.com/nfrund/voxnote/internal/content"
	"github.com/nfrund/voxnote/internal/view"
	"github.com/nfrund/voxnote/web/src/templates/components"
	"github.com/nfrund/voxnote/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LandingData is everything the landing page renders from.
type LandingData struct {
	Content *content.Landing
	State   view.UiState
	Year    int
}

// Landing is the full marketing page. A nil Content renders every section empty.
func Landing(data LandingData) g.Node {
	landing := data.Content
	if landing == nil {
		landing = &content.Landing{}
	}

	return layouts.Base("",
		components.Nav(landing.Anchors, data.State),
		h.Main(
			components.Hero(data.State),
			components.Features(landing.Features),
			components.Pricing(landing.Plans),
			components.DemoTranscript(landing.Transcript),
		),
		components.Footer(landing.Anchors, data.Year),
	)
}
