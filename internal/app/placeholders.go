package app

import (
	"context"
	"sort"
	"strings"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/engine/placeholder"
	"go.trai.ch/zerr"
)

// SetPlaceholder remembers value for a cachable key.
func (a *App) SetPlaceholder(ctx context.Context, opts Options, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if !placeholder.IsCachable(key) {
		return zerr.With(
			zerr.With(domain.ErrInvalidPlaceholderKey, "key", key),
			"allowed", strings.Join(placeholder.CachableKeys, ", "),
		)
	}
	if strings.TrimSpace(value) == "" {
		return zerr.With(zerr.Wrap(domain.ErrInvalidInput, "placeholder value must not be empty"), "key", key)
	}

	return a.session(ctx, opts, func(cache *domain.Cache, rc *domain.RunContext) error {
		if placeholder.Remember(cache.UserPlaceholders, map[string]string{key: value}) {
			rc.MarkModified()
		}
		return nil
	})
}

// GetPlaceholders returns the saved value for key, or every saved value
// sorted by key when key is empty.
func (a *App) GetPlaceholders(ctx context.Context, opts Options, key string) ([]PlaceholderValue, error) {
	key = strings.ToLower(strings.TrimSpace(key))

	var out []PlaceholderValue
	err := a.session(ctx, opts, func(cache *domain.Cache, _ *domain.RunContext) error {
		if key != "" {
			if v, ok := cache.UserPlaceholders[key]; ok {
				out = append(out, PlaceholderValue{Key: key, Value: v})
			}
			return nil
		}
		for k, v := range cache.UserPlaceholders {
			out = append(out, PlaceholderValue{Key: k, Value: v})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return nil
	})
	return out, err
}

// ClearPlaceholders forgets the given keys, or every saved value when keys is
// empty. It returns the keys that were removed.
func (a *App) ClearPlaceholders(ctx context.Context, opts Options, keys []string) ([]string, error) {
	var cleared []string
	err := a.session(ctx, opts, func(cache *domain.Cache, rc *domain.RunContext) error {
		if len(keys) == 0 {
			for k := range cache.UserPlaceholders {
				cleared = append(cleared, k)
			}
			clear(cache.UserPlaceholders)
		} else {
			for _, k := range keys {
				k = strings.ToLower(strings.TrimSpace(k))
				if _, ok := cache.UserPlaceholders[k]; ok {
					delete(cache.UserPlaceholders, k)
					cleared = append(cleared, k)
				}
			}
		}
		sort.Strings(cleared)
		if len(cleared) > 0 {
			rc.MarkModified()
		}
		return nil
	})
	return cleared, err
}
