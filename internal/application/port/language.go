package port

// LanguageSource provides the user's ordered list of preferred language
// tags, most preferred first (e.g. "zh-TW", "en").
type LanguageSource interface {
	// Languages returns a snapshot of the list. Callers may keep it.
	Languages() []string

	// OnChange registers fn to be called when the list may have changed.
	// Returns a function that removes the listener.
	OnChange(fn func()) func()
}
