package domain

const (
	// DefaultAPIBase is the GitHub REST endpoint.
	DefaultAPIBase = "https://api.github.com"
	// DefaultOwner owns the corpus repository.
	DefaultOwner = "github"
	// DefaultRepo is the corpus repository.
	DefaultRepo = "choosealicense.com"
	// DefaultBranch is the published branch of the corpus.
	DefaultBranch = "gh-pages"
)

// Settings is the resolved configuration for a run.
type Settings struct {
	CacheFile string         `yaml:"cache_file"`
	Source    SourceSettings `yaml:"source"`
}

// SourceSettings selects where the corpus is read from.
type SourceSettings struct {
	APIBase string `yaml:"api_base"`
	Owner   string `yaml:"owner"`
	Repo    string `yaml:"repo"`
	Branch  string `yaml:"branch"`
	// Dir points at a local checkout; when set the network is not used.
	Dir string `yaml:"dir"`
	// Token is read from the environment only.
	Token string `yaml:"-"`
}

// DefaultSettings returns settings pointing at the public corpus.
func DefaultSettings() *Settings {
	return &Settings{
		Source: SourceSettings{
			APIBase: DefaultAPIBase,
			Owner:   DefaultOwner,
			Repo:    DefaultRepo,
			Branch:  DefaultBranch,
		},
	}
}

// ApplyDefaults fills blank fields with the public corpus defaults.
func (s *Settings) ApplyDefaults() {
	d := DefaultSettings()
	if s.Source.APIBase == "" {
		s.Source.APIBase = d.Source.APIBase
	}
	if s.Source.Owner == "" {
		s.Source.Owner = d.Source.Owner
	}
	if s.Source.Repo == "" {
		s.Source.Repo = d.Source.Repo
	}
	if s.Source.Branch == "" {
		s.Source.Branch = d.Source.Branch
	}
}
