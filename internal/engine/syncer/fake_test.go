package syncer_test

import (
	"context"
	"errors"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const rulesYAML = `permissions:
- tag: commercial-use
  label: Commercial use
  description: May be used commercially.
conditions:
- tag: include-copyright
  label: License and copyright notice
  description: Include the notice.
limitations:
- tag: liability
  label: Liability
  description: No liability.
`

const mitText = `---
title: MIT License
spdx-id: MIT
permissions:
  - commercial-use
conditions:
  - include-copyright
limitations:
  - liability
---

Copyright (c) [year] [fullname]
`

const isc = `---
title: ISC License
spdx-id: ISC
permissions:
  - commercial-use
---

Copyright [year] [fullname] <[email]>
`

// fakeSource serves listings and contents from memory and counts downloads.
type fakeSource struct {
	listings map[string][]domain.RemoteFile
	listErr  map[string]error
	contents map[string]string
	fetches  []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		listings: map[string][]domain.RemoteFile{
			domain.DataDir: {
				{Name: "rules.yml", Kind: domain.KindFile, Hash: "r1", DownloadURL: "mem://rules.yml"},
				{Name: "README.md", Kind: domain.KindFile, Hash: "x", DownloadURL: "mem://README.md"},
			},
			domain.LicensesDir: {
				{Name: "mit.txt", Kind: domain.KindFile, Hash: "m1", DownloadURL: "mem://mit.txt"},
				{Name: "isc.txt", Kind: domain.KindFile, Hash: "i1", DownloadURL: "mem://isc.txt"},
				{Name: "drafts", Kind: domain.KindDir, Hash: "d"},
			},
		},
		listErr: map[string]error{},
		contents: map[string]string{
			"mem://rules.yml": rulesYAML,
			"mem://mit.txt":   mitText,
			"mem://isc.txt":   isc,
		},
	}
}

func (f *fakeSource) ListDirectory(_ context.Context, path string) ([]domain.RemoteFile, error) {
	if err := f.listErr[path]; err != nil {
		return nil, err
	}
	return f.listings[path], nil
}

func (f *fakeSource) FetchContent(_ context.Context, location string) (string, error) {
	f.fetches = append(f.fetches, location)
	content, ok := f.contents[location]
	if !ok {
		return "", &domain.RemoteError{URL: location, StatusCode: 404, Body: "Not Found"}
	}
	return content, nil
}

func (f *fakeSource) setHash(dir, name, hash string) {
	for i, file := range f.listings[dir] {
		if file.Name == name {
			f.listings[dir][i].Hash = hash
		}
	}
}

func (f *fakeSource) fetch(ctx context.Context, file domain.RemoteFile) (string, error) {
	if file.DownloadURL == "" {
		return "", errors.New("no download url")
	}
	return f.FetchContent(ctx, file.DownloadURL)
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

