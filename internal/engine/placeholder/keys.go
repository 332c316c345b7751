// Package placeholder resolves bracketed template tokens to values.
package placeholder

import "strings"

// Standard keys.
const (
	KeyFullname   = "fullname"
	KeyProject    = "project"
	KeyEmail      = "email"
	KeyProjectURL = "projecturl"
	KeyYear       = "year"
)

// tokenKeys maps a lower-cased, bracket-stripped token to its standard key.
var tokenKeys = map[string]string{
	"fullname":                KeyFullname,
	"name of copyright owner": KeyFullname,
	"login":                   KeyFullname,
	"project":                 KeyProject,
	"email":                   KeyEmail,
	"projecturl":              KeyProjectURL,
	"year":                    KeyYear,
	"yyyy":                    KeyYear,
}

// CachableKeys are the keys whose values are remembered between runs.
var CachableKeys = []string{KeyFullname, KeyProject, KeyEmail, KeyProjectURL}

var argHints = map[string]string{
	KeyFullname:   "--fullname",
	KeyProject:    "--project",
	KeyEmail:      "--email",
	KeyProjectURL: "--projecturl",
	KeyYear:       "--year",
}

// Normalize maps a raw token such as "[Name of Copyright Owner]" to its standard key.
func Normalize(token string) (string, bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "["), "]")
	key, ok := tokenKeys[strings.ToLower(strings.TrimSpace(inner))]
	return key, ok
}

// IsCachable reports whether key may be stored in the saved values.
func IsCachable(key string) bool {
	for _, k := range CachableKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ArgumentHint returns the command-line flag that supplies a token's value.
func ArgumentHint(token string) (string, bool) {
	key, ok := Normalize(token)
	if !ok {
		return "", false
	}
	return argHints[key], true
}
