package domain

// RuleTable is the decoded rules.yml data file.
type RuleTable struct {
	Permissions []RuleSource `json:"permissions" yaml:"permissions"`
	Conditions  []RuleSource `json:"conditions" yaml:"conditions"`
	Limitations []RuleSource `json:"limitations" yaml:"limitations"`
}

// RuleSource is one rule as declared in the rule table.
type RuleSource struct {
	Tag         string `json:"tag" yaml:"tag"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// FieldTable is the decoded fields.yml data file.
type FieldTable struct {
	Items []FieldSource
}

// FieldSource describes one placeholder field.
type FieldSource struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Describe returns the description of the field with the given name.
func (t *FieldTable) Describe(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, item := range t.Items {
		if item.Name == name {
			return item.Description, true
		}
	}
	return "", false
}
