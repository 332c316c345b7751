package rules

import (
	"slices"

	"go.trai.ch/getlicense/internal/core/domain"
)

// Scope restricts which rule category a key rule is looked up in.
type Scope int

const (
	// ScopeAny matches the tag in any category.
	ScopeAny Scope = iota
	// ScopePermission matches the tag among permissions only.
	ScopePermission
	// ScopeLimitation matches the tag among limitations only.
	ScopeLimitation
)

// KeyRule is one column of a license comparison.
type KeyRule struct {
	Label string
	Tag   string
	Scope Scope
}

// KeyRules are the rules shown side by side when comparing licenses.
// patent-use appears both as a permission and as a limitation.
var KeyRules = []KeyRule{
	{Label: "Commercial use", Tag: "commercial-use"},
	{Label: "State changes", Tag: "document-changes"},
	{Label: "Disclose source", Tag: "disclose-source"},
	{Label: "Same license", Tag: "same-license"},
	{Label: "License & copyright notice", Tag: "include-copyright"},
	{Label: "Liability", Tag: "liability"},
	{Label: "Warranty", Tag: "warranty"},
	{Label: "Trademark use", Tag: "trademark-use"},
	{Label: "Patent use (Perm)", Tag: "patent-use", Scope: ScopePermission},
	{Label: "Patent use (Lim)", Tag: "patent-use", Scope: ScopeLimitation},
}

// Matches reports whether entry carries the key rule.
func (k KeyRule) Matches(entry *domain.LicenseEntry) bool {
	switch k.Scope {
	case ScopePermission:
		return slices.Contains(entry.Permissions, k.Tag)
	case ScopeLimitation:
		return slices.Contains(entry.Limitations, k.Tag)
	default:
		return entry.HasRule(k.Tag)
	}
}

// Matching returns the entries that carry every required tag and none of
// the disallowed ones.
func Matching(entries []domain.LicenseEntry, require, disallow []string) []domain.LicenseEntry {
	var out []domain.LicenseEntry
	for i := range entries {
		e := &entries[i]
		if !hasAll(e, require) || hasAny(e, disallow) {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// UnknownTags returns the tags the rule table does not declare, in input order.
func UnknownTags(table *domain.RuleTable, tags []string) []string {
	known := AllTags(table)
	var unknown []string
	for _, t := range tags {
		if _, ok := known[t]; !ok {
			unknown = append(unknown, t)
		}
	}
	return unknown
}

func hasAll(e *domain.LicenseEntry, tags []string) bool {
	for _, t := range tags {
		if !e.HasRule(t) {
			return false
		}
	}
	return true
}

func hasAny(e *domain.LicenseEntry, tags []string) bool {
	for _, t := range tags {
		if e.HasRule(t) {
			return true
		}
	}
	return false
}
