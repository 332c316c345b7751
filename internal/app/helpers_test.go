package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/getlicense/internal/adapters/cachefile"
	"go.trai.ch/getlicense/internal/app"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports"
	"go.trai.ch/getlicense/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const rulesYAML = `permissions:
- tag: commercial-use
  label: Commercial use
  description: May be used commercially.
- tag: patent-use
  label: Patent use
  description: Grants patent rights.
conditions:
- tag: include-copyright
  label: License and copyright notice
  description: Include the notice.
- tag: same-license
  label: Same license
  description: Distribute under the same license.
limitations:
- tag: liability
  label: Liability
  description: No liability.
- tag: warranty
  label: Warranty
  description: No warranty.
`

const fieldsYAML = `- name: fullname
  description: The full name or username of the repository owner
- name: year
  description: The current year
- name: email
  description: The email address of the repository owner
`

const mitLicense = `---
title: MIT License
spdx-id: MIT
permissions:
  - commercial-use
conditions:
  - include-copyright
limitations:
  - liability
  - warranty
---

Copyright (c) [year] [fullname]
`

const gplLicense = `---
title: GNU General Public License v3.0
spdx-id: GPL-3.0
nickname: GNU GPLv3
permissions:
  - commercial-use
  - patent-use
conditions:
  - include-copyright
  - same-license
limitations:
  - liability
  - warranty
---

Copyright (C) [year] [fullname] <[email]>
`

// writeCorpus lays out a local mirror of the license corpus.
func writeCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"_data/rules.yml":        rulesYAML,
		"_data/fields.yml":       fieldsYAML,
		"_licenses/mit.txt":      mitLicense,
		"_licenses/gpl-3.0.txt":  gplLicense,
		"_licenses/README.md.bk": "ignored",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

type fixture struct {
	corpus    string
	cachePath string
	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()
	f := &fixture{
		corpus:    writeCorpus(t),
		cachePath: filepath.Join(t.TempDir(), "cache", "license_cache.json"),
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.loader.EXPECT().Load("").DoAndReturn(func(string) (*domain.Settings, error) {
		s := domain.DefaultSettings()
		s.CacheFile = f.cachePath
		s.Source.Dir = f.corpus
		return s, nil
	}).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) app(store ports.CacheStore) *app.App {
	if store == nil {
		store = cachefile.NewStore()
	}
	return app.New(f.loader, store, f.logger, nil).
		WithClock(func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) })
}

func (f *fixture) load(t *testing.T) *domain.Cache {
	t.Helper()
	cache, err := cachefile.NewStore().Load(f.cachePath)
	require.NoError(t, err)
	return cache
}
