// Package service holds the pure resolution rules for size classes, themes and locales.
package service

import "github.com/bnema/prefkit/internal/domain/entity"

// CalculateSizeClass maps the four "width >= threshold" results to a size class.
// The thresholds overlap (1300px satisfies all four), so they are checked from
// the highest down and the first true one wins.
func CalculateSizeClass(sm, md, lg, xl bool) entity.SizeClass {
	if xl {
		return entity.SizeExtraLarge
	}
	if lg {
		return entity.SizeLarge
	}
	if md {
		return entity.SizeMedium
	}
	if sm {
		return entity.SizeSmall
	}
	return entity.SizeMini
}

// SizeClassForWidth classifies a concrete width against t.
func SizeClassForWidth(width int, t entity.Thresholds) entity.SizeClass {
	return CalculateSizeClass(width >= t.SM, width >= t.MD, width >= t.LG, width >= t.XL)
}
