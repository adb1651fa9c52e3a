package layouts

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// HTMXSrc is the htmx build used by the UI toggles.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document shell.
func Base(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(title),
		Description: "VoxNote turns meeting recordings into speaker-attributed transcripts and summaries.",
		Language:    "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			h.Script(h.Src(HTMXSrc), h.Defer()),
		},
		Body: body,
	})
}
