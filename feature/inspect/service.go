package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"scene-inspector/core/storage"
	"scene-inspector/feature/gltf"
	"scene-inspector/feature/inspect/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by archive operations when no report
// database is configured.
var ErrNoDatabase = errors.New("no report database configured")

// Service runs inspections against bundles in object storage and keeps
// the report archive.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	db       *gorm.DB
	cacheTTL time.Duration

	// refFields are the custom material field ids the census counts as
	// texture references.
	refFields []uint32
}

// NewService creates a new inspect service. db may be nil; archive
// operations then report ErrNoDatabase.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cacheTTL time.Duration, refFields []uint32) *Service {
	return &Service{
		client:    client,
		bucket:    bucket,
		logger:    logger,
		db:        db,
		cacheTTL:  cacheTTL,
		refFields: refFields,
	}
}

// Inspect fetches a bundle object, parses it through the document
// cache and builds its report. Successful runs are archived when a
// database is configured.
func (s *Service) Inspect(ctx context.Context, object string, opts Options) (*Report, error) {
	imp, err := gltf.GetOrParse(ctx, s.bucket+"/"+object, s.cacheTTL, func(ctx context.Context) ([]byte, error) {
		obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
		if err != nil {
			return nil, err
		}
		defer obj.Close()
		return io.ReadAll(obj)
	})
	if err != nil {
		return nil, err
	}

	opts.TextureRefFields = s.refFields
	report, err := Build(ctx, imp, opts, s.logger)
	if err != nil {
		return nil, err
	}

	s.archive(ctx, object, report)
	return report, nil
}

// InspectPayload parses a caller-provided bundle and builds its report.
// Uploads bypass the document cache and the archive; they have no
// stable key to attach either to.
func (s *Service) InspectPayload(ctx context.Context, payload []byte, opts Options) (*Report, error) {
	imp, err := gltf.Parse(payload)
	if err != nil {
		return nil, err
	}

	opts.TextureRefFields = s.refFields
	return Build(ctx, imp, opts, s.logger)
}

// BundleObject describes one inspectable object in the bucket.
type BundleObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Bundles lists the bundle objects in the configured bucket.
func (s *Service) Bundles(ctx context.Context) ([]BundleObject, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true})
	bundles := []BundleObject{}
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		if !isBundleKey(obj.Key) {
			continue
		}
		bundles = append(bundles, BundleObject{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return bundles, nil
}

// History returns the most recent archived runs, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]models.ReportRun, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var runs []models.ReportRun
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load report history: %w", err)
	}
	return runs, nil
}

// archive persists one run summary. Archive failures degrade to a
// warning; the report itself already succeeded.
func (s *Service) archive(ctx context.Context, object string, r *Report) {
	if s.db == nil {
		return
	}

	run := models.ReportRun{
		ObjectKey:  object,
		Scenes:     r.Counts["scene"],
		Objects:    r.Counts["object"],
		Animations: r.Counts["animation"],
		Skins:      r.Counts["skin"],
		Lights:     r.Counts["light"],
		Materials:  r.Counts["material"],
		Meshes:     r.Counts["mesh"],
		Textures:   r.Counts["texture"],
		Images:     r.Counts["image"],
		Failures:   len(r.Failures),
		OutOfRange: len(r.OutOfRange),
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		s.logger.Warn("failed to archive report run",
			zap.String("object", object),
			zap.Error(err),
		)
	}
}

// isBundleKey reports whether an object key looks like a bundle the
// importer can read.
func isBundleKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.HasSuffix(lower, ".gltf") || strings.HasSuffix(lower, ".glb")
}
