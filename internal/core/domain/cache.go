package domain

import "encoding/json"

// Cache is the persisted snapshot of the remote corpus plus the user's saved values.
type Cache struct {
	// Licenses maps a lower-cased identifier to its entry.
	Licenses map[string]LicenseEntry `json:"licenses"`
	// DataFiles maps "data:<filename>" to a parsed data file.
	DataFiles map[string]DataFileEntry `json:"dataFiles"`
	// UserPlaceholders maps a standard placeholder key to its last-used value.
	UserPlaceholders map[string]string `json:"userPlaceholders"`
}

// NewCache returns an empty cache with all maps allocated.
func NewCache() *Cache {
	return &Cache{
		Licenses:         make(map[string]LicenseEntry),
		DataFiles:        make(map[string]DataFileEntry),
		UserPlaceholders: make(map[string]string),
	}
}

// cacheDocument is the on-disk shape, including names written by older releases.
type cacheDocument struct {
	Licenses               map[string]LicenseEntry  `json:"licenses"`
	DataFiles              map[string]DataFileEntry `json:"dataFiles"`
	LegacyDataFiles        map[string]DataFileEntry `json:"data_files"`
	UserPlaceholders       map[string]string        `json:"userPlaceholders"`
	LegacyUserPlaceholders map[string]string        `json:"user_placeholders_cache"`
}

// UnmarshalJSON accepts legacy key names and defaults missing maps to empty.
func (c *Cache) UnmarshalJSON(data []byte) error {
	var doc cacheDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	c.Licenses = doc.Licenses
	c.DataFiles = doc.DataFiles
	if c.DataFiles == nil {
		c.DataFiles = doc.LegacyDataFiles
	}
	c.UserPlaceholders = doc.UserPlaceholders
	if c.UserPlaceholders == nil {
		c.UserPlaceholders = doc.LegacyUserPlaceholders
	}

	c.ensureMaps()
	return nil
}

func (c *Cache) ensureMaps() {
	if c.Licenses == nil {
		c.Licenses = make(map[string]LicenseEntry)
	}
	if c.DataFiles == nil {
		c.DataFiles = make(map[string]DataFileEntry)
	}
	if c.UserPlaceholders == nil {
		c.UserPlaceholders = make(map[string]string)
	}
}

// ClonePlaceholders returns a copy of the saved placeholder values.
func (c *Cache) ClonePlaceholders() map[string]string {
	out := make(map[string]string, len(c.UserPlaceholders))
	for k, v := range c.UserPlaceholders {
		out[k] = v
	}
	return out
}

// DataFileEntry is a cached metadata file.
type DataFileEntry struct {
	Sha string `json:"sha"`
	// Content is the parsed YAML, normalized to JSON-compatible values.
	Content any `json:"content"`
}
