package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/getlicense/internal/engine/parser"
)

const mitFile = `---
title: MIT License
spdx-id: MIT
featured: true
hidden: false

description: A short and simple permissive license.

how: Create a text file (typically named LICENSE or LICENSE.txt) in the root of your source code and copy the text of the license into the file. Replace [year] with the current year and [fullname] with the name (or names) of the copyright holders.

using:
  Babel: https://github.com/babel/babel/blob/master/LICENSE
  .NET: https://github.com/dotnet/runtime/blob/main/LICENSE.TXT

permissions:
  - commercial-use
  - modifications

conditions:
  - include-copyright

limitations:
  - liability
  - warranty

---

MIT License

Copyright (c) [year] [fullname]
`

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantMeta string
		wantHas  bool
		wantBody string
	}{
		{
			name:     "with front matter",
			raw:      "---\ntitle: X\n---\n\nBody text\n",
			wantMeta: "title: X",
			wantHas:  true,
			wantBody: "Body text",
		},
		{
			name:     "without front matter",
			raw:      "  Just a body\n",
			wantBody: "Just a body",
		},
		{
			name:     "unterminated front matter is body",
			raw:      "---\ntitle: X\nBody",
			wantBody: "---\ntitle: X\nBody",
		},
		{
			name:     "crlf line endings",
			raw:      "---\r\ntitle: X\r\n---\r\nBody\r\n",
			wantMeta: "title: X",
			wantHas:  true,
			wantBody: "Body",
		},
		{
			name:     "empty front matter",
			raw:      "---\n---\nBody",
			wantMeta: "",
			wantHas:  true,
			wantBody: "Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, has, body := parser.SplitFrontMatter(tt.raw)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantHas, has)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParseLicenseFile(t *testing.T) {
	lic, err := parser.ParseLicenseFile("mit.txt", mitFile)
	require.NoError(t, err)

	assert.Equal(t, "MIT", lic.ID)
	assert.Equal(t, "mit", lic.Key())
	assert.Equal(t, "MIT License", lic.Meta.Title)
	assert.Equal(t, []string{"commercial-use", "modifications"}, lic.Meta.Permissions)
	assert.Equal(t, []string{"include-copyright"}, lic.Meta.Conditions)
	assert.Equal(t, []string{"liability", "warranty"}, lic.Meta.Limitations)
	assert.Equal(t, "https://github.com/babel/babel/blob/master/LICENSE", lic.Meta.Using["Babel"])
	assert.Equal(t, "MIT License\n\nCopyright (c) [year] [fullname]", lic.Body)
}

func TestParseLicenseFile_IdentifierFromFilename(t *testing.T) {
	lic, err := parser.ParseLicenseFile("bsd-3-clause.txt", "---\npermissions: []\n---\nBody")
	require.NoError(t, err)

	assert.Equal(t, "bsd-3-clause", lic.ID)
	assert.Equal(t, "bsd-3-clause", lic.Meta.SpdxID)
	assert.Equal(t, "bsd-3-clause", lic.Meta.Title, "title defaults to the identifier")
}

func TestParseLicenseFile_NoFrontMatter(t *testing.T) {
	lic, err := parser.ParseLicenseFile("unlicense.txt", "This is free and unencumbered software.")
	require.NoError(t, err)

	assert.Equal(t, "unlicense", lic.ID)
	assert.Equal(t, "This is free and unencumbered software.", lic.Body)
}

func TestParseLicenseFile_MissingIdentifier(t *testing.T) {
	_, err := parser.ParseLicenseFile("weird name!.txt", "Body")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingIdentifier.Error())
}

func TestParseLicenseFile_MalformedYAML(t *testing.T) {
	_, err := parser.ParseLicenseFile("mit.txt", "---\ntitle: [unclosed\n---\nBody")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrParseFailed.Error())
}

func TestIdentifierFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"mit.txt", "mit", true},
		{"gpl-3.0.txt", "gpl-3.0", true},
		{"gpl-2.0+.txt", "gpl-2.0+", true},
		{"_licenses/apache-2.0.txt", "apache-2.0", true},
		{"has space.txt", "", false},
		{".txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, ok := parser.IdentifierFromFilename(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
