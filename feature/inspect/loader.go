package inspect

import (
	"fmt"
	"time"

	"scene-inspector/core/storage"
	"scene-inspector/feature/inspect/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inspect feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cacheTTL time.Duration, refFields []uint32) *Feature {
	svc := NewService(client, bucket, logger, db, cacheTTL, refFields)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inspect"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the report archive and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.service.db != nil {
		if err := f.service.db.AutoMigrate(&models.ReportRun{}); err != nil {
			return fmt.Errorf("failed to migrate report archive: %w", err)
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
