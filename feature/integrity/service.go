package integrity

import (
	"context"
	"errors"
	"fmt"

	"ingredient-manager/core/objectstore"
	"ingredient-manager/feature/containers"
	"ingredient-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoStore is returned by structure checks when no object store is configured.
	ErrNoStore = errors.New("object store not configured")
	// ErrNoDatabase is returned by database checks without a connection.
	ErrNoDatabase = errors.New("database not configured")
)

// Service handles integrity checks.
type Service struct {
	client  objectstore.Client
	bucket  string
	region  string
	folders []string
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. folders are the bucket prefixes
// that must exist, typically the journal prefix.
func NewService(client objectstore.Client, bucket, region string, folders []string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		region:  region,
		folders: folders,
		db:      db,
		logger:  logger,
	}
}

// Folders returns the bucket prefixes the structure check expects.
func (s *Service) Folders() []string {
	return s.folders
}

// CheckStructure returns the missing bucket folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoStore
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates the bucket and the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrNoStore
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.region, s.logger, missing)
}

// Structure checks the bucket layout and, with fix, creates whatever is
// missing. A missing or unreadable bucket counts as every folder missing when
// fixing.
func (s *Service) Structure(ctx context.Context, fix bool) (*checks.StructureReport, error) {
	missing, err := s.CheckStructure(ctx)
	if err != nil {
		if !fix || errors.Is(err, ErrNoStore) {
			return nil, err
		}
		s.logger.Warn("Bucket unavailable, recreating structure", zap.Error(err))
		missing = s.Folders()
	}

	report := &checks.StructureReport{Status: "checked", Missing: missing}
	if !fix || len(missing) == 0 {
		return report, nil
	}

	if err := s.FixStructure(ctx, missing); err != nil {
		return report, fmt.Errorf("failed to fix structure: %w", err)
	}
	report.Status = "fixed"
	report.Fixed = missing
	return report, nil
}

// CheckServer verifies the database schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckServerIntegrity(s.db)
}

// CheckContents audits the persisted contents of every container.
func (s *Service) CheckContents(ctx context.Context) (*checks.ContentsReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	list, err := containers.NewRepository(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckContents(list), nil
}
