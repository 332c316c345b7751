// Package parser turns raw corpus files into structured values.
package parser

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9.\-+]+$`)

// License is a parsed license file.
type License struct {
	// ID is the identifier as declared, not yet lower-cased.
	ID   string
	Meta domain.FrontMatter
	Body string
}

// Key returns the cache key of the license.
func (l *License) Key() string {
	return strings.ToLower(l.ID)
}

// SplitFrontMatter separates the leading YAML block from the template body.
// Both halves are trimmed. Without a leading delimiter the whole text is body.
func SplitFrontMatter(raw string) (meta string, hasMeta bool, body string) {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(text, delimiter) {
		return "", false, strings.TrimSpace(text)
	}

	rest := text[len(delimiter):]
	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return "", false, strings.TrimSpace(text)
	}

	meta = strings.TrimSpace(rest[:end])
	body = strings.TrimSpace(rest[end+1+len(delimiter):])
	return meta, true, body
}

// ParseLicenseFile decodes the front matter of a license file and resolves its identifier.
func ParseLicenseFile(filename, raw string) (*License, error) {
	meta, hasMeta, body := SplitFrontMatter(raw)

	var fm domain.FrontMatter
	if hasMeta && meta != "" {
		if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "file", filename)
		}
	}

	id := strings.TrimSpace(fm.SpdxID)
	if id == "" {
		stem, ok := IdentifierFromFilename(filename)
		if !ok {
			return nil, zerr.With(domain.ErrMissingIdentifier, "file", filename)
		}
		id = stem
	}

	fm.SpdxID = id
	if strings.TrimSpace(fm.Title) == "" {
		fm.Title = id
	}

	return &License{ID: id, Meta: fm, Body: body}, nil
}

// IdentifierFromFilename derives an identifier from the file stem.
func IdentifierFromFilename(filename string) (string, bool) {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if !identifierPattern.MatchString(stem) {
		return "", false
	}
	return stem, true
}
