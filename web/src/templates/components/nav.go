package components

import (
	"strconv"

	"github.com/nfrund/voxnote/internal/content"
	"github.com/nfrund/voxnote/internal/view"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// NavFragmentPath serves the navigation bar for a given UiState.
const NavFragmentPath = "/ui/nav"

// LoginPath starts the Google sign-in.
const LoginPath = "/auth/google"

// Nav renders the top navigation. Both toggles ask the server for the nav in
// the flipped state and swap it in place.
func Nav(anchors []content.Anchor, state view.UiState) g.Node {
	return h.Nav(
		h.ID("site-nav"),
		c.Classes{"site-nav": true, "menu-open": state.MenuOpen},
		h.A(h.Class("brand"), h.Href("/"), g.Text("VoxNote")),
		h.Button(
			h.ID("menu-toggle"),
			h.Class("btn"),
			h.Type("button"),
			h.Aria("expanded", strconv.FormatBool(state.MenuOpen)),
			h.Aria("controls", "nav-links"),
			toggle(state.ToggleMenu()),
			g.Text("Menu"),
		),
		h.Ul(
			h.ID("nav-links"),
			h.Class("nav-links"),
			g.Map(anchors, func(a content.Anchor) g.Node {
				return h.Li(h.A(h.Href(a.Href), g.Text(a.Label)))
			}),
		),
		h.Div(
			h.Class("nav-actions"),
			h.Button(
				h.ID("mode-toggle"),
				h.Class("btn"),
				h.Type("button"),
				toggle(state.ToggleMode()),
				g.Text(state.ModeLabel()),
			),
			h.A(h.ID("sign-in"), h.Class("btn btn-primary"), h.Href(LoginPath), g.Text("Sign In")),
		),
	)
}

// NavFragment is the htmx response for a toggle: the nav plus an out-of-band
// update of the hero call to action so its label follows the mode.
func NavFragment(anchors []content.Anchor, state view.UiState) g.Node {
	return g.Group{
		Nav(anchors, state),
		CallToAction(state, true),
	}
}

// CallToAction is the hero's Google sign-in button.
func CallToAction(state view.UiState, outOfBand bool) g.Node {
	return h.A(
		h.ID("cta"),
		h.Class("btn btn-primary"),
		h.Href(LoginPath),
		g.If(outOfBand, hx.SwapOOB("true")),
		g.Text(state.CallToAction()),
	)
}

func toggle(next view.UiState) g.Node {
	return g.Group{
		hx.Get(NavFragmentPath + "?" + next.Query().Encode()),
		hx.Target("#site-nav"),
		hx.Swap("outerHTML"),
	}
}
