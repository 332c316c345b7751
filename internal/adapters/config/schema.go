package config

// settingsFile is the on-disk shape of config.yaml.
type settingsFile struct {
	CacheFile string        `yaml:"cache_file"`
	Source    sourceSection `yaml:"source"`
}

type sourceSection struct {
	APIBase string `yaml:"api_base"`
	Owner   string `yaml:"owner"`
	Repo    string `yaml:"repo"`
	Branch  string `yaml:"branch"`
	Dir     string `yaml:"dir"`
}
