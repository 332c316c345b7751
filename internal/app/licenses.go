package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/engine/placeholder"
	"go.trai.ch/getlicense/internal/engine/rules"
	"go.trai.ch/zerr"
)

// Sync synchronizes the cache and nothing else.
func (a *App) Sync(ctx context.Context, opts Options) (*SyncReport, error) {
	var report SyncReport
	err := a.session(ctx, opts, func(cache *domain.Cache, rc *domain.RunContext) error {
		report = SyncReport{
			Fetched:   rc.Modified(),
			Licenses:  len(cache.Licenses),
			DataFiles: len(cache.DataFiles),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns the requested licenses, or all of them, sorted by identifier.
// Unknown identifiers are warned about and skipped.
func (a *App) List(ctx context.Context, opts Options, ids []string) ([]domain.LicenseEntry, error) {
	var out []domain.LicenseEntry
	err := a.session(ctx, opts, func(cache *domain.Cache, _ *domain.RunContext) error {
		out = a.selectLicenses(cache, ids)
		return nil
	})
	return out, err
}

// Info returns the full details of one license.
func (a *App) Info(ctx context.Context, opts Options, id string) (*LicenseInfo, error) {
	var info *LicenseInfo
	err := a.session(ctx, opts, func(cache *domain.Cache, _ *domain.RunContext) error {
		var err error
		info, err = describe(cache, id)
		return err
	})
	return info, err
}

// Compare lays the key rules of at least two licenses side by side.
// Without ids every cached license is compared.
func (a *App) Compare(ctx context.Context, opts Options, ids []string) (*Comparison, error) {
	var cmp *Comparison
	err := a.session(ctx, opts, func(cache *domain.Cache, _ *domain.RunContext) error {
		entries := a.selectLicenses(cache, ids)
		if len(entries) < 2 {
			return zerr.With(
				zerr.Wrap(domain.ErrInvalidInput, "need at least two licenses to compare"),
				"found", len(entries),
			)
		}

		cmp = &Comparison{Licenses: entries}
		for _, k := range rules.KeyRules {
			cmp.Labels = append(cmp.Labels, k.Label)
		}
		for i := range entries {
			row := make([]bool, len(rules.KeyRules))
			for j, k := range rules.KeyRules {
				row[j] = k.Matches(&entries[i])
			}
			cmp.Marks = append(cmp.Marks, row)
		}
		return nil
	})
	return cmp, err
}

// Find returns the licenses carrying every required tag and none of the
// disallowed ones, sorted by SPDX identifier.
func (a *App) Find(ctx context.Context, opts Options, require, disallow []string) (*FindResult, error) {
	if len(require) == 0 && len(disallow) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidInput, "provide at least one --require or --disallow tag")
	}

	var result *FindResult
	err := a.session(ctx, opts, func(cache *domain.Cache, _ *domain.RunContext) error {
		table, ok := rules.FromDataFiles(cache.DataFiles)
		if !ok {
			return zerr.With(domain.ErrMissingData, "key", domain.RulesDataKey)
		}

		badRequire := rules.UnknownTags(table, require)
		badDisallow := rules.UnknownTags(table, disallow)
		if len(badRequire) > 0 || len(badDisallow) > 0 {
			err := zerr.Wrap(domain.ErrInvalidInput, "invalid rule tags")
			if len(badRequire) > 0 {
				err = zerr.With(err, "require", strings.Join(badRequire, ", "))
			}
			if len(badDisallow) > 0 {
				err = zerr.With(err, "disallow", strings.Join(badDisallow, ", "))
			}
			return err
		}

		matches := rules.Matching(sortedEntries(cache), require, disallow)
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].SpdxID < matches[j].SpdxID
		})
		result = &FindResult{Require: require, Disallow: disallow, Matches: matches}
		return nil
	})
	return result, err
}

func (a *App) selectLicenses(cache *domain.Cache, ids []string) []domain.LicenseEntry {
	if len(ids) == 0 {
		return sortedEntries(cache)
	}

	var out []domain.LicenseEntry
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		key := strings.ToLower(id)
		entry, ok := cache.Licenses[key]
		if !ok {
			a.logger.Warn(fmt.Sprintf("license %q not found, skipping", id))
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, entry)
	}
	return out
}

func sortedEntries(cache *domain.Cache) []domain.LicenseEntry {
	keys := make([]string, 0, len(cache.Licenses))
	for k := range cache.Licenses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.LicenseEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, cache.Licenses[k])
	}
	return out
}

func lookup(cache *domain.Cache, id string) (string, domain.LicenseEntry, error) {
	key := strings.ToLower(id)
	entry, ok := cache.Licenses[key]
	if !ok {
		return "", domain.LicenseEntry{}, zerr.With(domain.ErrLicenseNotFound, "license", id)
	}
	return key, entry, nil
}

func describe(cache *domain.Cache, id string) (*LicenseInfo, error) {
	key, entry, err := lookup(cache, id)
	if err != nil {
		return nil, err
	}

	fields, _ := rules.FieldsFromDataFiles(cache.DataFiles)

	info := &LicenseInfo{Key: key, Entry: entry}
	for _, token := range entry.PlaceholdersInBody {
		p := PlaceholderInfo{Token: token}
		if std, ok := placeholder.Normalize(token); ok {
			p.Key = std
			if placeholder.IsCachable(std) {
				p.Saved = cache.UserPlaceholders[std]
			}
			p.Hint, _ = placeholder.ArgumentHint(token)
			if fields != nil {
				p.Description, _ = fields.Describe(std)
			}
		}
		info.Placeholders = append(info.Placeholders, p)
	}
	return info, nil
}
