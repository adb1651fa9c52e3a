package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node so it satisfies templ.Component.
// Pages are built with gomponents and handed to the renderer as templ components.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component. gomponents has no use for ctx.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	if a.Node == nil {
		return nil
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}
