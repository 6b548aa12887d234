package entity

import (
	"errors"
	"fmt"
	"strings"
)

// SizeClass is a discrete viewport-width category.
// Members are totally ordered and compared by ordinal; never reorder them.
type SizeClass int

const (
	// SizeMini is a viewport narrower than the sm threshold (< 576px by default),
	// e.g. wearables.
	SizeMini SizeClass = iota
	// SizeSmall is [sm, md), usually a phone.
	SizeSmall
	// SizeMedium is [md, lg), a large phone or tablet.
	SizeMedium
	// SizeLarge is [lg, xl), a laptop or desktop.
	SizeLarge
	// SizeExtraLarge is >= xl, a desktop or TV.
	SizeExtraLarge
)

// SizeClasses lists every size class in ascending order.
var SizeClasses = []SizeClass{SizeMini, SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}

var sizeClassNames = [...]string{"mini", "sm", "md", "lg", "xl"}

// String returns the short name used in config files and CLI output.
func (c SizeClass) String() string {
	if c < SizeMini || c > SizeExtraLarge {
		return fmt.Sprintf("SizeClass(%d)", int(c))
	}
	return sizeClassNames[c]
}

// Valid reports whether c is one of the five defined classes.
func (c SizeClass) Valid() bool {
	return c >= SizeMini && c <= SizeExtraLarge
}

// AtLeast reports whether c is o or larger.
func (c SizeClass) AtLeast(o SizeClass) bool {
	return c >= o
}

// ErrUnknownSizeClass is returned by ParseSizeClass for unrecognised names.
var ErrUnknownSizeClass = errors.New("unknown size class")

// ParseSizeClass parses a short ("md") or long ("medium") size class name.
func ParseSizeClass(s string) (SizeClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mini", "xs":
		return SizeMini, nil
	case "sm", "small":
		return SizeSmall, nil
	case "md", "medium":
		return SizeMedium, nil
	case "lg", "large":
		return SizeLarge, nil
	case "xl", "extra-large", "extralarge":
		return SizeExtraLarge, nil
	}
	return SizeMini, fmt.Errorf("%w: %q", ErrUnknownSizeClass, s)
}

// MinThreshold is the smallest accepted sm threshold in pixels.
const MinThreshold = 128

// ErrInvalidThresholds is returned when breakpoint thresholds are not
// strictly increasing or below MinThreshold.
var ErrInvalidThresholds = errors.New("invalid breakpoint thresholds")

// Thresholds holds the minimum widths, in CSS pixels, of the sm, md, lg and xl classes.
type Thresholds struct {
	SM int `mapstructure:"sm" json:"sm" toml:"sm"`
	MD int `mapstructure:"md" json:"md" toml:"md"`
	LG int `mapstructure:"lg" json:"lg" toml:"lg"`
	XL int `mapstructure:"xl" json:"xl" toml:"xl"`
}

// DefaultThresholds returns 576/768/992/1200.
func DefaultThresholds() Thresholds {
	return Thresholds{SM: 576, MD: 768, LG: 992, XL: 1200}
}

// Validate checks that SM >= MinThreshold and SM < MD < LG < XL.
func (t Thresholds) Validate() error {
	if t.SM < MinThreshold {
		return fmt.Errorf("%w: sm=%d must be >= %d", ErrInvalidThresholds, t.SM, MinThreshold)
	}
	if t.MD <= t.SM {
		return fmt.Errorf("%w: md=%d must be greater than sm=%d", ErrInvalidThresholds, t.MD, t.SM)
	}
	if t.LG <= t.MD {
		return fmt.Errorf("%w: lg=%d must be greater than md=%d", ErrInvalidThresholds, t.LG, t.MD)
	}
	if t.XL <= t.LG {
		return fmt.Errorf("%w: xl=%d must be greater than lg=%d", ErrInvalidThresholds, t.XL, t.LG)
	}
	return nil
}

// Values returns the thresholds in ascending order (sm, md, lg, xl).
func (t Thresholds) Values() [4]int {
	return [4]int{t.SM, t.MD, t.LG, t.XL}
}
