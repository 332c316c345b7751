package app

import "go.trai.ch/getlicense/internal/core/domain"

// SyncReport summarizes a sync run.
type SyncReport struct {
	CachePath string
	Fetched   bool
	Licenses  int
	DataFiles int
}

// LicenseInfo is a cached license with its placeholder details.
type LicenseInfo struct {
	Key          string
	Entry        domain.LicenseEntry
	Placeholders []PlaceholderInfo
}

// PlaceholderInfo describes one bracketed token of a license body.
type PlaceholderInfo struct {
	Token string
	// Key is the standard key, empty for unknown tokens.
	Key string
	// Saved is the remembered value for Key, if any.
	Saved string
	// Hint is the flag that supplies a value.
	Hint string
	// Description comes from the field table.
	Description string
}

// Comparison holds licenses side by side against the key rules.
type Comparison struct {
	Licenses []domain.LicenseEntry
	Labels   []string
	// Marks[i][j] reports whether Licenses[i] carries key rule j.
	Marks [][]bool
}

// FindResult lists the licenses matching a rule query.
type FindResult struct {
	Require  []string
	Disallow []string
	Matches  []domain.LicenseEntry
}

// FillResult reports what a fill wrote.
type FillResult struct {
	Entry      domain.LicenseEntry
	OutputPath string
	// Applied maps each standard key to the value used.
	Applied  map[string]string
	Unfilled []string
	// Hints maps unfilled tokens to the flag that supplies them.
	Hints map[string]string
}

// PlaceholderValue is a saved placeholder value.
type PlaceholderValue struct {
	Key   string
	Value string
}
