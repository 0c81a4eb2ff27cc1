package geofence

import (
	"context"
	"strings"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers for file:// and gs:// zone documents.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

const (
	SourcePostgres = "postgres"
	SourceBlob     = "blob"
)

// Source loads the full set of delivery zones.
type Source interface {
	Load(ctx context.Context) ([]*entity.DeliveryZone, error)
	Name() string
}

// RepositorySource reads zones through a ZoneRepository.
type RepositorySource struct {
	repo repository.ZoneRepository
}

// NewRepositorySource creates a source backed by the zone repository
func NewRepositorySource(repo repository.ZoneRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) Load(ctx context.Context) ([]*entity.DeliveryZone, error) {
	zones, err := s.repo.FindActiveZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find active zones")
	}

	return zones, nil
}

func (s *RepositorySource) Name() string {
	return SourcePostgres
}

// BlobSource reads a GeoJSON FeatureCollection from a bucket object.
type BlobSource struct {
	bucketURL string
	key       string
}

// NewBlobSource creates a source reading key from the bucket at bucketURL
func NewBlobSource(bucketURL, key string) *BlobSource {
	return &BlobSource{bucketURL: bucketURL, key: key}
}

func (s *BlobSource) Load(ctx context.Context) ([]*entity.DeliveryZone, error) {
	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", s.bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.key)
	}

	return DecodeZones(data)
}

func (s *BlobSource) Name() string {
	return SourceBlob
}

// StaticSource serves a fixed zone list.
type StaticSource struct {
	zones []*entity.DeliveryZone
}

// NewStaticSource creates a source that always returns zones
func NewStaticSource(zones []*entity.DeliveryZone) *StaticSource {
	return &StaticSource{zones: zones}
}

func (s *StaticSource) Load(_ context.Context) ([]*entity.DeliveryZone, error) {
	return s.zones, nil
}

func (s *StaticSource) Name() string {
	return "static"
}

// NewSource picks the configured source. A nil config reads from the repository.
func NewSource(cfg *config.ZonesConfig, repo repository.ZoneRepository) (Source, error) {
	if cfg == nil || cfg.Source == "" {
		cfg = &config.ZonesConfig{Source: SourcePostgres}
	}

	switch strings.ToLower(cfg.Source) {
	case SourcePostgres:
		if repo == nil {
			return nil, errors.New("zone repository is required for postgres source")
		}

		return NewRepositorySource(repo), nil
	case SourceBlob:
		if cfg.BucketURL == "" || cfg.Key == "" {
			return nil, errors.New("bucketUrl and key are required for blob source")
		}

		return NewBlobSource(cfg.BucketURL, cfg.Key), nil
	default:
		return nil, errors.Errorf("unsupported zone source: %s", cfg.Source)
	}
}
