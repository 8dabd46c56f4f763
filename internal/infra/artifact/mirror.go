// Package artifact mirrors trained model artifacts into blob storage.
package artifact

import (
	"context"
	"log/slog"
	"time"

	"routecast/config"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/repository"
	"routecast/internal/errors"
	"routecast/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// mirror
	_ "gocloud.dev/blob/gcsblob"  // gs:// mirror
	_ "gocloud.dev/blob/s3blob"   // s3:// mirror
	"gocloud.dev/gcerrors"
)

const objectSuffix = ".json"

// ErrChecksumMismatch is returned when a mirrored payload does not match its recorded digest.
var ErrChecksumMismatch = errors.New("mirror object checksum mismatch")

// BlobMirror implements ModelArtifactRepository on a gocloud bucket.
type BlobMirror struct {
	bucket *blob.Bucket
}

// NewBlobMirror wraps an opened bucket.
func NewBlobMirror(bucket *blob.Bucket) *BlobMirror {
	return &BlobMirror{bucket: bucket}
}

// MirrorParams defines the dependencies for the mirror provider.
type MirrorParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// MirrorResult exposes the mirror under its DI name.
type MirrorResult struct {
	fx.Out

	Mirror repository.ModelArtifactRepository `name:"modelMirror"`
}

// ProvideMirror opens the configured bucket. An empty URL disables mirroring.
func ProvideMirror(params MirrorParams) (MirrorResult, error) {
	url := params.Config.Model.MirrorURL
	if url == "" {
		params.Logger.Info("Model mirror disabled")

		return MirrorResult{}, nil
	}

	bucket, err := blob.OpenBucket(context.Background(), url)
	if err != nil {
		return MirrorResult{}, errors.Wrapf(err, "open model mirror %s", url)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})
	params.Logger.Info("Model mirror opened", slog.String("url", url))

	return MirrorResult{Mirror: NewBlobMirror(bucket)}, nil
}

// SaveArtifact writes the payload under name.json, replacing any previous object.
func (m *BlobMirror) SaveArtifact(ctx context.Context, artifact *entity.ModelArtifact) error {
	if artifact.UpdatedAt.IsZero() {
		artifact.UpdatedAt = time.Now().UTC()
	}

	err := m.bucket.WriteAll(ctx, artifact.Name+objectSuffix, artifact.Payload, &blob.WriterOptions{
		ContentType: "application/json",
		Metadata: map[string]string{
			"updated_at": artifact.UpdatedAt.Format(time.RFC3339Nano),
			"sha256":     util.Checksum(artifact.Payload),
		},
	})
	if err != nil {
		return errors.Wrapf(err, "write mirror object %s", artifact.Name)
	}

	return nil
}

// FindArtifact reads name.json back, returning ErrArtifactNotFound when absent
// and ErrChecksumMismatch when the stored digest disagrees with the payload.
func (m *BlobMirror) FindArtifact(ctx context.Context, name string) (*entity.ModelArtifact, error) {
	key := name + objectSuffix

	attrs, err := m.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrArtifactNotFound
		}

		return nil, errors.Wrapf(err, "stat mirror object %s", name)
	}

	payload, err := m.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "read mirror object %s", name)
	}

	if want, ok := attrs.Metadata["sha256"]; ok && want != util.Checksum(payload) {
		return nil, errors.Wrapf(ErrChecksumMismatch, "object %s", name)
	}

	updatedAt := attrs.ModTime.UTC()
	if raw, ok := attrs.Metadata["updated_at"]; ok {
		if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			updatedAt = parsed
		}
	}

	return &entity.ModelArtifact{
		Name:      name,
		Payload:   payload,
		UpdatedAt: updatedAt,
	}, nil
}
