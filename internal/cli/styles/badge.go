package styles

import (
	"github.com/bnema/prefkit/internal/domain/entity"
)

// SizeClassBadge renders a size class badge.
func (t *Theme) SizeClassBadge(c entity.SizeClass) string {
	return t.Badge.Render(c.String())
}

// ChoiceBadge renders an accent badge for an explicit choice and a muted
// one when the value follows the system.
func (t *Theme) ChoiceBadge(text string, auto bool) string {
	if auto {
		return t.BadgeMuted.Render(text)
	}
	return t.Badge.Render(text)
}
