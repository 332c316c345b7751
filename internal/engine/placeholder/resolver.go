package placeholder

import (
	"strconv"
	"strings"
	"time"
)

// Request gathers the inputs of a resolution.
type Request struct {
	// Saved holds the remembered values; only cachable keys are consulted.
	Saved map[string]string
	// Explicit holds values supplied for this run, keyed by standard key.
	// Blank values count as not supplied.
	Explicit map[string]string
	// Now supplies the default year.
	Now time.Time
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	// Replacements maps standard keys to final values.
	Replacements map[string]string
	// Remember holds the explicit non-year values to merge into the saved values after a fill.
	Remember map[string]string
}

// Resolve layers saved values, explicit values and the year default.
func Resolve(req Request) Resolution {
	res := Resolution{
		Replacements: make(map[string]string),
		Remember:     make(map[string]string),
	}

	for _, key := range CachableKeys {
		if v, ok := req.Saved[key]; ok && v != "" {
			res.Replacements[key] = v
		}
	}

	for _, key := range CachableKeys {
		if v := req.Explicit[key]; v != "" {
			res.Replacements[key] = v
			res.Remember[key] = v
		}
	}

	if y := req.Explicit[KeyYear]; y != "" {
		res.Replacements[KeyYear] = y
	} else {
		now := req.Now
		if now.IsZero() {
			now = time.Now()
		}
		res.Replacements[KeyYear] = strconv.Itoa(now.Year())
	}

	return res
}

// Fill substitutes every occurrence of each known token that has a value.
// Unknown tokens and tokens without a value are left verbatim.
func Fill(body string, replacements map[string]string, tokens []string) string {
	out := body
	for _, token := range tokens {
		key, ok := Normalize(token)
		if !ok {
			continue
		}
		value, ok := replacements[key]
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, token, value)
	}
	return out
}

// Unfilled returns the tokens Fill leaves in place.
func Unfilled(tokens []string, replacements map[string]string) []string {
	var left []string
	for _, token := range tokens {
		key, ok := Normalize(token)
		if ok {
			if _, has := replacements[key]; has {
				continue
			}
		}
		left = append(left, token)
	}
	return left
}

// Remember merges values into saved and reports whether saved changed.
func Remember(saved, values map[string]string) bool {
	changed := false
	for k, v := range values {
		if !IsCachable(k) || v == "" {
			continue
		}
		if saved[k] != v {
			saved[k] = v
			changed = true
		}
	}
	return changed
}
