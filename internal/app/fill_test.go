package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/getlicense/internal/app"
	"go.trai.ch/getlicense/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_Fill(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	a := f.app(nil)
	ctx := context.Background()
	out := filepath.Join(t.TempDir(), "nested", "LICENSE")

	res, err := a.Fill(ctx, app.Options{}, app.FillRequest{
		ID:     "GPL-3.0",
		Values: map[string]string{"fullname": "Jane Doe"},
		Output: out,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Copyright (C) 2024 Jane Doe <[email]>\n", string(data))
	assert.Equal(t, []string{"[email]"}, res.Unfilled)
	assert.Equal(t, map[string]string{"[email]": "--email"}, res.Hints)
	assert.Equal(t, "2024", res.Applied["year"])

	assert.Equal(t, map[string]string{"fullname": "Jane Doe"}, f.load(t).UserPlaceholders)

	// Remembered values fill later runs; explicit values win over them.
	res, err = a.Fill(ctx, app.Options{}, app.FillRequest{
		ID:     "mit",
		Values: map[string]string{"year": "2019"},
		Output: out,
	})
	require.NoError(t, err)
	data, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Copyright (c) 2019 Jane Doe\n", string(data))
	assert.Empty(t, res.Unfilled)

	// year is never remembered.
	assert.Equal(t, map[string]string{"fullname": "Jane Doe"}, f.load(t).UserPlaceholders)
}

func TestApp_Fill_DefaultOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	t.Chdir(t.TempDir())

	res, err := f.app(nil).Fill(context.Background(), app.Options{}, app.FillRequest{ID: "mit"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOutputFile, res.OutputPath)

	data, err := os.ReadFile(domain.DefaultOutputFile)
	require.NoError(t, err)
	assert.Equal(t, "Copyright (c) 2024 [fullname]\n", string(data))
}

func TestApp_Fill_UnknownLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	out := filepath.Join(t.TempDir(), "LICENSE")

	_, err := f.app(nil).Fill(context.Background(), app.Options{}, app.FillRequest{ID: "nope", Output: out})
	assert.ErrorContains(t, err, domain.ErrLicenseNotFound.Error())
	assert.NoFileExists(t, out)
}
