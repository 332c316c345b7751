package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/engine/rules"
)

func table() *domain.RuleTable {
	return &domain.RuleTable{
		Permissions: []domain.RuleSource{
			{Tag: "commercial-use", Label: "Commercial use", Description: "May be used commercially."},
			{Tag: "modifications", Label: "Modification", Description: "May be modified."},
		},
		Conditions: []domain.RuleSource{
			{Tag: "include-copyright", Label: "License and copyright notice", Description: "Include the notice."},
		},
		Limitations: []domain.RuleSource{
			{Tag: "liability", Label: "Liability", Description: "No liability."},
		},
	}
}

func TestBuildInfoComponents_KnownTags(t *testing.T) {
	fm := &domain.FrontMatter{
		How:         "Copy it.",
		Note:        "A note.",
		Using:       map[string]string{"Babel": "https://example.com"},
		Permissions: []string{"modifications", "commercial-use"},
		Conditions:  []string{"include-copyright"},
		Limitations: []string{"liability"},
	}

	info := rules.BuildInfoComponents(fm, table())

	assert.Equal(t, "Copy it.", info.HowToApplyText)
	assert.Equal(t, "A note.", info.NoteText)
	assert.Equal(t, fm.Using, info.UsingInfo)
	assert.Equal(t, []domain.RuleDetail{
		{Tag: "commercial-use", Label: "Commercial use", Description: "May be used commercially."},
		{Tag: "modifications", Label: "Modification", Description: "May be modified."},
	}, info.ParsedRules.Permissions)
	assert.Equal(t, "Liability", info.ParsedRules.Limitations[0].Label)
}

func TestBuildInfoComponents_UnknownTagFallsBack(t *testing.T) {
	fm := &domain.FrontMatter{Permissions: []string{"zzz-custom", "commercial-use", "aaa-custom"}}

	info := rules.BuildInfoComponents(fm, table())

	assert.Equal(t, []domain.RuleDetail{
		{Tag: "commercial-use", Label: "Commercial use", Description: "May be used commercially."},
		{Tag: "aaa-custom", Label: "aaa-custom", Description: rules.DescriptionNotFound},
		{Tag: "zzz-custom", Label: "zzz-custom", Description: rules.DescriptionNotFound},
	}, info.ParsedRules.Permissions)
}

func TestBuildInfoComponents_NoTable(t *testing.T) {
	fm := &domain.FrontMatter{
		Permissions: []string{"modifications", "commercial-use"},
		Limitations: []string{"warranty", "liability"},
	}

	info := rules.BuildInfoComponents(fm, nil)

	assert.Equal(t, []domain.RuleDetail{
		{Tag: "commercial-use", Label: "commercial-use", Description: rules.DescriptionUnavailable},
		{Tag: "modifications", Label: "modifications", Description: rules.DescriptionUnavailable},
	}, info.ParsedRules.Permissions)
	assert.Equal(t, "liability", info.ParsedRules.Limitations[0].Tag)
	assert.Nil(t, info.ParsedRules.Conditions)
}

func TestFromDataFiles(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		_, ok := rules.FromDataFiles(map[string]domain.DataFileEntry{})
		assert.False(t, ok)
	})

	t.Run("present", func(t *testing.T) {
		files := map[string]domain.DataFileEntry{
			domain.RulesDataKey: {Sha: "1", Content: map[string]any{
				"permissions": []any{map[string]any{"tag": "commercial-use", "label": "Commercial use", "description": "d"}},
			}},
		}
		tbl, ok := rules.FromDataFiles(files)
		assert.True(t, ok)
		assert.Equal(t, "Commercial use", tbl.Permissions[0].Label)
	})

	t.Run("undecodable", func(t *testing.T) {
		files := map[string]domain.DataFileEntry{domain.RulesDataKey: {Sha: "1", Content: "text"}}
		_, ok := rules.FromDataFiles(files)
		assert.False(t, ok)
	})
}

func TestFieldsFromDataFiles(t *testing.T) {
	files := map[string]domain.DataFileEntry{
		domain.FieldsDataKey: {Sha: "1", Content: []any{map[string]any{"name": "year", "description": "The current year"}}},
	}
	tbl, ok := rules.FieldsFromDataFiles(files)
	assert.True(t, ok)

	desc, found := tbl.Describe("year")
	assert.True(t, found)
	assert.Equal(t, "The current year", desc)
}

func TestAllTagsAndLabel(t *testing.T) {
	tags := rules.AllTags(table())
	assert.Len(t, tags, 4)
	assert.Contains(t, tags, "liability")
	assert.Empty(t, rules.AllTags(nil))

	assert.Equal(t, "Liability", rules.LabelFor(table().Limitations, "liability"))
	assert.Equal(t, "warranty", rules.LabelFor(table().Limitations, "warranty"))
}
