package domain

// RunContext carries the switches of a single invocation through the core.
type RunContext struct {
	// ForceRefresh refetches every remote file regardless of hashes.
	ForceRefresh bool
	// Verbose enables debug logging.
	Verbose bool

	modified bool
}

// MarkModified records that the cache differs from what is on disk.
func (rc *RunContext) MarkModified() {
	rc.modified = true
}

// Modified reports whether the cache needs saving.
func (rc *RunContext) Modified() bool {
	return rc.modified
}
