package transfer

import (
	"context"
	"errors"

	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/journal"
	engine "ingredient-manager/core/transfer"
	"ingredient-manager/feature/containers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs transfers between persisted containers.
type Service struct {
	repo    *containers.Repository
	journal *journal.Journal
	logger  *zap.Logger
	locks   *lockTable
}

// NewService creates a new transfer service. A nil journal disables journaling.
func NewService(repo *containers.Repository, j *journal.Journal, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		journal: j,
		logger:  logger,
		locks:   newLockTable(),
	}
}

// Execute loads both containers, runs the requested transfer and, unless the
// request is a simulation, persists both containers in one transaction. A
// protocol violation rolls the transaction back.
func (s *Service) Execute(ctx context.Context, req Request) (*Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	release := s.locks.acquire(req.Source, req.Destination)
	defer release()

	l := s.logger.With(
		zap.String("source", req.Source),
		zap.String("destination", req.Destination),
		zap.String("mode", string(req.Mode)),
	)
	if req.RayID != "" {
		l = l.With(zap.String("ray_id", req.RayID))
	}

	var moved itemstack.Stack
	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		src, source, err := s.repo.Load(tx, req.Source)
		if err != nil {
			return err
		}
		dst, destination, err := s.repo.Load(tx, req.Destination)
		if err != nil {
			return err
		}

		moved, err = run(source, destination, req)
		if err != nil {
			return err
		}
		if req.Simulate || moved.Count == 0 {
			return nil
		}

		if err := s.repo.Save(tx, src, source); err != nil {
			return err
		}
		return s.repo.Save(tx, dst, destination)
	})
	if err != nil {
		var violation *engine.ProtocolViolationError
		if errors.As(err, &violation) {
			l.Error("Transfer aborted by protocol violation",
				zap.String("offender", violation.Destination),
				zap.Int64("lost", violation.LostQuantity),
				zap.Error(err),
			)
		}
		return nil, err
	}

	result := &Result{Moved: moved, Simulated: req.Simulate}
	if req.Simulate {
		l.Debug("Transfer simulated", zap.Stringer("moved", moved))
		return result, nil
	}

	l.Info("Transfer committed", zap.Stringer("moved", moved))
	if moved.Count > 0 && s.journal.Enabled() {
		rec, err := s.journal.Append(ctx, journal.Record{
			RayID:       req.RayID,
			Source:      req.Source,
			Destination: req.Destination,
			Mode:        string(req.Mode),
			Moved:       moved,
		})
		if err != nil {
			// The transfer is already committed.
			l.Warn("Failed to journal transfer", zap.Error(err))
		} else {
			result.JournalID = rec.ID
		}
	}
	return result, nil
}

// History returns up to limit journal records, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]journal.Record, error) {
	return s.journal.List(ctx, limit)
}
