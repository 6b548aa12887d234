package port

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   -  50+: Config file detectors
	//   -  10+: Fallback detectors (gsettings, env vars)
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	// Returns (preference, true) on success, (_, false) if unavailable or detection failed.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeSource is the live OS color scheme signal.
type ColorSchemeSource interface {
	// PrefersDark returns the current OS preference.
	// ok is false when no detector could answer.
	PrefersDark() (dark bool, ok bool)

	// OnChange registers fn to be called when the OS preference changes.
	// Returns a function that removes the listener.
	OnChange(fn func()) func()
}
