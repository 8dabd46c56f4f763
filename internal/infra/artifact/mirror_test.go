package artifact

import (
	"context"
	"testing"
	"time"

	"routecast/internal/domain/entity"
	"routecast/internal/domain/repository"
	"routecast/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

func newTestMirror(t *testing.T) *BlobMirror {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobMirror(bucket)
}

func TestBlobMirror_SaveAndFind(t *testing.T) {
	mirror := newTestMirror(t)
	ctx := context.Background()
	updatedAt := time.Date(2025, 3, 4, 8, 30, 0, 0, time.UTC)

	err := mirror.SaveArtifact(ctx, &entity.ModelArtifact{
		Name:      "route_predictor",
		Payload:   []byte(`{"trips_count":12}`),
		UpdatedAt: updatedAt,
	})
	require.NoError(t, err)

	found, err := mirror.FindArtifact(ctx, "route_predictor")
	require.NoError(t, err)
	assert.Equal(t, "route_predictor", found.Name)
	assert.JSONEq(t, `{"trips_count":12}`, string(found.Payload))
	assert.True(t, updatedAt.Equal(found.UpdatedAt))
}

func TestBlobMirror_SaveReplaces(t *testing.T) {
	mirror := newTestMirror(t)
	ctx := context.Background()

	require.NoError(t, mirror.SaveArtifact(ctx, &entity.ModelArtifact{Name: "m", Payload: []byte(`{"v":1}`)}))
	require.NoError(t, mirror.SaveArtifact(ctx, &entity.ModelArtifact{Name: "m", Payload: []byte(`{"v":2}`)}))

	found, err := mirror.FindArtifact(ctx, "m")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(found.Payload))
}

func TestBlobMirror_NotFound(t *testing.T) {
	mirror := newTestMirror(t)

	_, err := mirror.FindArtifact(context.Background(), "missing")

	assert.True(t, errors.Is(err, repository.ErrArtifactNotFound))
}

func TestBlobMirror_ChecksumMismatch(t *testing.T) {
	mirror := newTestMirror(t)
	ctx := context.Background()

	err := mirror.bucket.WriteAll(ctx, "m"+objectSuffix, []byte(`{"v":3}`), &blob.WriterOptions{
		Metadata: map[string]string{"sha256": "deadbeef"},
	})
	require.NoError(t, err)

	_, err = mirror.FindArtifact(ctx, "m")

	assert.True(t, errors.Is(err, ErrChecksumMismatch))
}
