package render

import (
	"strings"
	"time"

	"maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	"maragu.dev/gomponents/html"

	"github.com/bnema/prefkit/internal/domain/build"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/i18n"
	"github.com/bnema/prefkit/internal/preference"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

var themeIcons = map[entity.ResolvedTheme]string{
	entity.ResolvedDark:  "moon",
	entity.ResolvedLight: "sun",
}

// PreviewPage renders a standalone page describing snap in its own locale.
// The snapshot is embedded as datastar signals so the breakpoint blocks
// can be toggled client side.
func PreviewPage(snap preference.Snapshot, now time.Time) gomponents.Node {
	msg := snap.Locale.Messages

	languages := msg.T("languages.none")
	if len(snap.Languages) > 0 {
		languages = strings.Join(snap.Languages, ", ")
	}

	return html.Doctype(
		html.HTML(
			html.Lang(snap.Locale.ID),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(gomponents.Text(msg.T("app.title"))),
				html.Script(html.Type("module"), html.Src(datastarScript)),
			),
			html.Body(
				html.Class("theme-"+string(snap.Theme)),
				data.Signals(map[string]any{
					"sizeClass":    snap.SizeClass.String(),
					"theme":        string(snap.Theme),
					"themeChoice":  string(snap.ThemeChoice),
					"locale":       snap.Locale.ID,
					"localeChoice": snap.LocaleChoice,
				}),
				html.Main(
					html.Class("preferences"),
					html.H1(gomponents.Text(msg.T("app.title"))),
					Label(LabelOptions{
						Prefix: Icon(themeIcons[snap.Theme]),
						Label:  msg.T("theme.label") + ": " + msg.T("theme."+string(snap.Theme)) + choiceNote(msg.T("theme.auto"), snap.ThemeChoice == entity.ThemeAuto),
						URL:    "/settings/theme",
					}),
					Label(LabelOptions{
						Prefix: Icon("languages"),
						Label:  msg.T("locale.label") + ": " + snap.Locale.Name + choiceNote(msg.T("locale.auto"), snap.LocaleChoice == entity.LocaleAuto),
						URL:    "/settings/locale",
					}),
					Label(LabelOptions{
						Prefix: Icon("monitor"),
						Label:  msg.T("breakpoint.label") + ": " + msg.T("breakpoint."+snap.SizeClass.String()),
					}),
					Label(LabelOptions{
						Prefix: Icon("globe"),
						Label:  msg.T("languages.label") + ": " + languages,
					}),
					sizeClassBlocks(msg),
					html.Footer(
						Label(LabelOptions{
							Label:  "prefkit",
							Suffix: Icon("external-link"),
							URL:    build.RepoURL(),
						}),
						html.P(html.Class("muted"), gomponents.Text(msg.Tf("preview.updated", snap.Locale.Date.FormatDateTime(now)))),
					),
				),
			),
		),
	)
}

// sizeClassBlocks renders one block per size class; datastar shows the one
// matching $sizeClass.
func sizeClassBlocks(msg i18n.Bundle) gomponents.Node {
	blocks := make(gomponents.Group, 0, len(entity.SizeClasses))
	for _, c := range entity.SizeClasses {
		blocks = append(blocks, html.Div(
			html.Class("size-"+c.String()),
			data.Show("$sizeClass === '"+c.String()+"'"),
			gomponents.Text(msg.T("breakpoint."+c.String())),
		))
	}
	return html.Section(html.Class("size-classes"), blocks)
}

func choiceNote(auto string, isAuto bool) string {
	if !isAuto {
		return ""
	}
	return " (" + auto + ")"
}
