// Package components renders the pieces the form shell prints between forms
package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownProps describes one markdown block to render
type MarkdownProps struct {
	Markdown string
	Width    int
	Styled   bool // false renders without colour, for non-terminals
}

type rendererKey struct {
	width  int
	styled bool
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width and style
func getRenderer(k rendererKey) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(k); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := glamour.WithStandardStyle("notty")
	if k.styled {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(k.width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(k, renderer)
	return renderer, nil
}

// RenderMarkdown renders props, falling back to the raw markdown when
// glamour fails
func RenderMarkdown(props MarkdownProps) string {
	renderer, err := getRenderer(rendererKey{width: props.Width, styled: props.Styled})
	if err != nil {
		return props.Markdown
	}
	rendered, err := renderer.Render(props.Markdown)
	if err != nil {
		return props.Markdown
	}
	return strings.TrimSpace(rendered)
}
