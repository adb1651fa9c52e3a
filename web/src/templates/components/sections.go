package components

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nfrund/voxnote/internal/content"
	"github.com/nfrund/voxnote/internal/view"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Hero is the headline block with the sign-in call to action.
func Hero(state view.UiState) g.Node {
	return h.Header(
		h.ID("hero"),
		h.Class("hero"),
		h.H1(g.Text("Every meeting, written down.")),
		h.P(g.Text("Upload a recording and VoxNote returns a speaker-attributed transcript, a searchable archive and a summary for the whole team.")),
		CallToAction(state, false),
	)
}

// Features renders one card per feature. An empty list yields an empty grid.
func Features(features []content.Feature) g.Node {
	return h.Section(
		h.ID("features"),
		h.H2(g.Text("Features")),
		h.Div(
			h.Class("feature-grid"),
			g.Map(features, FeatureCard),
		),
	)
}

// FeatureCard renders a single feature.
func FeatureCard(f content.Feature) g.Node {
	return h.Article(
		h.Class("feature-card"),
		g.If(f.Icon != "", h.Span(h.Class("feature-icon"), g.Text(f.Icon))),
		h.H3(g.Text(f.Title)),
		g.If(f.Description != "", h.P(g.Text(f.Description))),
	)
}

// Pricing renders one card per plan.
func Pricing(plans []content.Plan) g.Node {
	return h.Section(
		h.ID("pricing"),
		h.H2(g.Text("Pricing")),
		h.Div(
			h.Class("plan-grid"),
			g.Map(plans, PlanCard),
		),
	)
}

// PlanCard renders a single plan.
func PlanCard(p content.Plan) g.Node {
	return h.Article(
		c.Classes{"plan-card": true, "plan-highlighted": p.Highlighted},
		h.H3(g.Text(p.Name)),
		h.P(
			h.Class("plan-price"),
			g.Text(p.Price),
			g.If(p.Period != "", h.Span(h.Class("plan-period"), g.Text(" "+p.Period))),
		),
		h.Ul(g.Map(p.Features, func(f string) g.Node {
			return h.Li(g.Text(f))
		})),
	)
}

// DemoTranscript renders a sample of the product's output.
func DemoTranscript(segments []content.TranscriptSegment) g.Node {
	return h.Section(
		h.ID("demo"),
		h.H2(g.Text("See a transcript")),
		h.Ol(
			h.Class("transcript"),
			g.Map(segments, func(s content.TranscriptSegment) g.Node {
				return h.Li(
					h.Class("transcript-line"),
					g.El("time", h.Class("timestamp"), g.Attr("datetime", Duration(s.Start)), g.Text(Timestamp(s.Start))),
					h.Strong(h.Class("speaker"), g.Text(s.Speaker)),
					h.Span(h.Class("text"), g.Text(s.Text)),
				)
			}),
		),
	)
}

// Footer closes the page with the anchor links and copyright line.
func Footer(anchors []content.Anchor, year int) g.Node {
	return h.Footer(
		h.ID("contact"),
		h.Class("site-footer"),
		h.Ul(g.Map(anchors, func(a content.Anchor) g.Node {
			return h.Li(h.A(h.Href(a.Href), g.Text(a.Label)))
		})),
		h.P(g.Text("© "+strconv.Itoa(year)+" VoxNote. All rights reserved.")),
	)
}

// Timestamp formats an offset in seconds as mm:ss, rounding down.
func Timestamp(seconds float64) string {
	total := int(math.Max(0, math.Floor(seconds)))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Duration formats an offset in seconds as an HTML duration string.
func Duration(seconds float64) string {
	return fmt.Sprintf("PT%dS", int(math.Max(0, math.Floor(seconds))))
}
