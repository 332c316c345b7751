package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/engine/placeholder"
	"go.trai.ch/zerr"
)

// FillRequest carries the inputs of a fill.
type FillRequest struct {
	ID string
	// Values holds explicit placeholder values keyed by standard key.
	Values map[string]string
	// Output is the file to write, LICENSE when empty.
	Output string
}

// Fill writes the license with its placeholders substituted and remembers
// the explicitly supplied values.
func (a *App) Fill(ctx context.Context, opts Options, req FillRequest) (*FillResult, error) {
	var result *FillResult
	err := a.session(ctx, opts, func(cache *domain.Cache, rc *domain.RunContext) error {
		_, entry, err := lookup(cache, req.ID)
		if err != nil {
			return err
		}

		res := placeholder.Resolve(placeholder.Request{
			Saved:    cache.UserPlaceholders,
			Explicit: req.Values,
			Now:      a.now(),
		})
		body := placeholder.Fill(entry.FileContentCached, res.Replacements, entry.PlaceholdersInBody)

		out := req.Output
		if out == "" {
			out = domain.DefaultOutputFile
		}
		if err := writeOutput(out, body+"\n"); err != nil {
			return err
		}

		if placeholder.Remember(cache.UserPlaceholders, res.Remember) {
			rc.MarkModified()
			a.logger.Debug("updated saved placeholder values")
		}

		result = &FillResult{
			Entry:      entry,
			OutputPath: out,
			Applied:    res.Replacements,
			Unfilled:   placeholder.Unfilled(entry.PlaceholdersInBody, res.Replacements),
			Hints:      make(map[string]string),
		}
		for _, token := range result.Unfilled {
			if hint, ok := placeholder.ArgumentHint(token); ok {
				result.Hints[token] = hint
			}
		}
		a.logger.Debug(fmt.Sprintf("wrote %s", out))
		return nil
	})
	return result, err
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
		}
	}
	//nolint:gosec // output path is chosen by the user
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}
