package domain

// LicenseEntry is a cached, parsed license template.
type LicenseEntry struct {
	SpdxID      string `json:"spdxId"`
	Title       string `json:"title"`
	Nickname    string `json:"nickname,omitempty"`
	Description string `json:"description,omitempty"`
	Filename    string `json:"filename"`
	Sha         string `json:"sha"`

	Permissions []string `json:"permissions"`
	Conditions  []string `json:"conditions"`
	Limitations []string `json:"limitations"`

	// FileContentCached is the template body without front matter.
	FileContentCached  string         `json:"fileContentCached"`
	PlaceholdersInBody []string       `json:"placeholdersInBody"`
	InfoComponents     InfoComponents `json:"infoComponents"`
}

// InfoComponents holds the presentation details derived from front matter.
type InfoComponents struct {
	HowToApplyText string            `json:"howToApplyText,omitempty"`
	NoteText       string            `json:"noteText,omitempty"`
	UsingInfo      map[string]string `json:"usingInfo"`
	ParsedRules    ParsedRules       `json:"parsedRules"`
}

// ParsedRules groups resolved rule details by category.
type ParsedRules struct {
	Permissions []RuleDetail `json:"permissions"`
	Conditions  []RuleDetail `json:"conditions"`
	Limitations []RuleDetail `json:"limitations"`
}

// RuleDetail is a rule tag joined with its human-readable label and description.
type RuleDetail struct {
	Tag         string `json:"tag"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// FrontMatter is the YAML header of a license file.
type FrontMatter struct {
	SpdxID      string            `yaml:"spdx-id"`
	Title       string            `yaml:"title"`
	Nickname    string            `yaml:"nickname"`
	Description string            `yaml:"description"`
	How         string            `yaml:"how"`
	Note        string            `yaml:"note"`
	Permissions []string          `yaml:"permissions"`
	Conditions  []string          `yaml:"conditions"`
	Limitations []string          `yaml:"limitations"`
	Using       map[string]string `yaml:"using"`
}

// HasRule reports whether tag appears in any of the entry's rule lists.
func (e *LicenseEntry) HasRule(tag string) bool {
	for _, list := range [][]string{e.Permissions, e.Conditions, e.Limitations} {
		for _, t := range list {
			if t == tag {
				return true
			}
		}
	}
	return false
}
