package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/getlicense/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New(&bytes.Buffer{})
	assert.NotNil(t, recorder)
}

func TestRecorder_RecordLifecycle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	progress := progrock.NewProgress(&buf)
	recorder := progrock.NewRecorder(progress)
	ctx := context.Background()

	gotCtx, fetched := recorder.Record(ctx, "license mit.txt")
	assert.Equal(t, ctx, gotCtx)

	_, err := fetched.Stdout().Write([]byte("downloaded\n"))
	require.NoError(t, err)
	fetched.Complete(nil)

	_, cached := recorder.Record(ctx, "data rules.yml")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(ctx, "license broken.txt")
	failed.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())

	assert.Equal(t,
		"[1] ✓ license mit.txt\n"+
			"[3] ✗ license broken.txt: boom\n",
		buf.String())

	total, hits := progress.Counts()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, hits)
}

func TestProgress_EachVertexPrintedOnce(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	recorder := progrock.NewRecorder(progrock.NewProgress(&buf))

	_, v := recorder.Record(context.Background(), "license isc.txt")
	v.Complete(nil)
	v.Complete(nil)

	assert.Equal(t, "[1] ✓ license isc.txt\n", buf.String())
}
