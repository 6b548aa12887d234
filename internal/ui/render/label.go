// Package render builds server-side HTML fragments with gomponents.
package render

import (
	"strings"

	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const labelClass = "flex flex-row align-items-center align-content-center gap-2"

// Link targets accepted by LabelOptions.Target.
const (
	TargetBlank  = "_blank"
	TargetSelf   = "_self"
	TargetParent = "_parent"
	TargetTop    = "_top"
)

// LabelOptions describes a label row: optional prefix icon, text and
// optional suffix icon, optionally wrapped in a link.
type LabelOptions struct {
	Label string
	// LabelFunc is evaluated at render time and wins over Label.
	LabelFunc func() string

	Prefix     gomponents.Node
	PrefixFunc func() gomponents.Node
	Suffix     gomponents.Node
	SuffixFunc func() gomponents.Node

	// URL selects the element: empty renders a div, http(s) an external
	// anchor, anything else a client-side route link.
	URL     string
	URLFunc func() string

	Class []string
	// Target applies to external anchors only. Defaults to TargetBlank.
	Target        string
	AriaLabel     string
	AriaLabelFunc func() string

	// OnClick is a JavaScript click handler.
	OnClick string
	// OnActivate handles click and the Enter key, and makes the element
	// focusable. It replaces OnClick.
	OnActivate string
}

// Label renders opts as a single element.
func Label(opts LabelOptions) gomponents.Node {
	children := gomponents.Group{
		iconSlot(opts.PrefixFunc, opts.Prefix),
		labelSlot(opts),
		iconSlot(opts.SuffixFunc, opts.Suffix),
	}

	url := opts.URL
	if opts.URLFunc != nil {
		url = opts.URLFunc()
	}

	attrs := gomponents.Group{html.Class(labelClasses(opts.Class))}
	attrs = append(attrs, handlerAttrs(opts.OnClick, opts.OnActivate)...)

	if url == "" {
		return html.Div(attrs, children)
	}

	attrs = append(attrs, html.Href(url), html.Aria("label", ariaLabel(opts, url)))

	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		target := opts.Target
		if target == "" {
			target = TargetBlank
		}
		attrs = append(attrs, html.Target(target))
		if target == TargetBlank {
			attrs = append(attrs, html.Rel("noopener noreferrer"))
		}
		return html.A(attrs, children)
	}

	return html.A(attrs, gomponents.Attr("data-router-link"), children)
}

func labelClasses(extra []string) string {
	classes := []string{labelClass}
	for _, c := range extra {
		if c = strings.TrimSpace(c); c != "" {
			classes = append(classes, c)
		}
	}
	return strings.Join(classes, " ")
}

func handlerAttrs(onClick, onActivate string) gomponents.Group {
	if onActivate != "" {
		return gomponents.Group{
			gomponents.Attr("onclick", onActivate),
			gomponents.Attr("onkeyup", "if (event.key === 'Enter') { "+onActivate+" }"),
			html.TabIndex("0"),
		}
	}
	if onClick != "" {
		return gomponents.Group{gomponents.Attr("onclick", onClick)}
	}
	return nil
}

func ariaLabel(opts LabelOptions, url string) string {
	label := opts.AriaLabel
	if opts.AriaLabelFunc != nil {
		label = opts.AriaLabelFunc()
	}
	if label == "" {
		return "go to " + url
	}
	return label
}

func iconSlot(dynamic func() gomponents.Node, static gomponents.Node) gomponents.Node {
	var icon gomponents.Node
	switch {
	case dynamic != nil:
		icon = dynamic()
	case static != nil:
		icon = static
	}
	if icon == nil {
		return html.Div(html.Class("flex-grow-0"), html.Aria("hidden", "true"))
	}
	return html.Span(html.Class("icon"), html.Aria("hidden", "true"), icon)
}

func labelSlot(opts LabelOptions) gomponents.Node {
	text := opts.Label
	if opts.LabelFunc != nil {
		text = opts.LabelFunc()
	}
	if text == "" {
		return html.Div(html.Class("flex-grow-1"))
	}
	return html.Div(html.Class("flex-grow-1"), gomponents.Text(text))
}
