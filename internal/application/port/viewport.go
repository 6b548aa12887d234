package port

// MediaQuery is a live boolean "viewport width >= threshold" query.
type MediaQuery interface {
	// Query returns the media query text, e.g. "(min-width: 768px)".
	Query() string

	// Matches reports the current result.
	Matches() bool

	// OnChange registers fn to be called when the result flips.
	// fn is called at most once per actual change.
	// Returns a function that removes the listener.
	OnChange(fn func(matches bool)) func()
}

// Viewport creates width media queries.
// A nil Viewport means no windowing system is available.
type Viewport interface {
	MatchMedia(minWidth int) MediaQuery
}
