// Package rules joins license rule tags against the rule table.
package rules

import (
	"sort"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/engine/parser"
)

const (
	// DescriptionNotFound is used for a tag the rule table does not know.
	DescriptionNotFound = "Description not found in rule table."
	// DescriptionUnavailable is used for every tag when no rule table is cached.
	DescriptionUnavailable = "Rule table unavailable; no description."
)

// BuildInfoComponents derives the presentation details of a license from its front matter.
// table may be nil when the rule table has not been synchronized.
func BuildInfoComponents(fm *domain.FrontMatter, table *domain.RuleTable) domain.InfoComponents {
	info := domain.InfoComponents{
		HowToApplyText: fm.How,
		NoteText:       fm.Note,
		UsingInfo:      fm.Using,
	}

	if table == nil {
		info.ParsedRules = domain.ParsedRules{
			Permissions: resolve(fm.Permissions, nil, DescriptionUnavailable),
			Conditions:  resolve(fm.Conditions, nil, DescriptionUnavailable),
			Limitations: resolve(fm.Limitations, nil, DescriptionUnavailable),
		}
		return info
	}

	info.ParsedRules = domain.ParsedRules{
		Permissions: resolve(fm.Permissions, table.Permissions, DescriptionNotFound),
		Conditions:  resolve(fm.Conditions, table.Conditions, DescriptionNotFound),
		Limitations: resolve(fm.Limitations, table.Limitations, DescriptionNotFound),
	}
	return info
}

func resolve(tags []string, sources []domain.RuleSource, fallback string) []domain.RuleDetail {
	if len(tags) == 0 {
		return nil
	}

	byTag := make(map[string]domain.RuleSource, len(sources))
	for _, s := range sources {
		byTag[s.Tag] = s
	}

	details := make([]domain.RuleDetail, 0, len(tags))
	for _, tag := range tags {
		if src, ok := byTag[tag]; ok {
			details = append(details, domain.RuleDetail{Tag: tag, Label: src.Label, Description: src.Description})
			continue
		}
		details = append(details, domain.RuleDetail{Tag: tag, Label: tag, Description: fallback})
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Label < details[j].Label
	})
	return details
}

// FromDataFiles returns the rule table cached under data:rules.yml.
// An absent or undecodable entry reports false.
func FromDataFiles(dataFiles map[string]domain.DataFileEntry) (*domain.RuleTable, bool) {
	entry, ok := dataFiles[domain.RulesDataKey]
	if !ok || entry.Content == nil {
		return nil, false
	}
	table, err := parser.DecodeRuleTable(entry.Content)
	if err != nil {
		return nil, false
	}
	return table, true
}

// FieldsFromDataFiles returns the field table cached under data:fields.yml.
func FieldsFromDataFiles(dataFiles map[string]domain.DataFileEntry) (*domain.FieldTable, bool) {
	entry, ok := dataFiles[domain.FieldsDataKey]
	if !ok || entry.Content == nil {
		return nil, false
	}
	table, err := parser.DecodeFieldTable(entry.Content)
	if err != nil {
		return nil, false
	}
	return table, true
}

// AllTags returns every tag the rule table declares, across categories.
func AllTags(table *domain.RuleTable) map[string]struct{} {
	tags := make(map[string]struct{})
	if table == nil {
		return tags
	}
	for _, list := range [][]domain.RuleSource{table.Permissions, table.Conditions, table.Limitations} {
		for _, s := range list {
			tags[s.Tag] = struct{}{}
		}
	}
	return tags
}

// LabelFor returns the label of tag in the given category, falling back to the tag.
func LabelFor(sources []domain.RuleSource, tag string) string {
	for _, s := range sources {
		if s.Tag == tag {
			return s.Label
		}
	}
	return tag
}
