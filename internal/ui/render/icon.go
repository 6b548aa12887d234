package render

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Icon renders a lucide icon placeholder. Extra nodes add attributes such
// as a size class.
func Icon(name string, extra ...gomponents.Node) gomponents.Node {
	return html.I(html.Class("icon-glyph"), gomponents.Attr("data-lucide", name), gomponents.Group(extra))
}
