package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe    = "\uf0ac" // globe
	IconDesktop  = "\uf108" // desktop
	IconMoon     = "\uf186" // moon
	IconSun      = "\uf185" // sun
	IconLanguage = "\uf1ab" // language
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconInfo     = "\uf05a" // info
	IconCursor   = "\uf054" // chevron-right
)
