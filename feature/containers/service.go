package containers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/inventory"
	"ingredient-manager/core/transfer"
	"ingredient-manager/feature/containers/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// ErrInvalid is returned for malformed container requests.
var ErrInvalid = errors.New("invalid container request")

// CreateRequest describes a new container. Unset fields take the configured
// inventory defaults.
type CreateRequest struct {
	Name      string `json:"name"`
	Slots     *int   `json:"slots,omitempty"`
	Capacity  *int64 `json:"capacity,omitempty"`
	RateLimit *int64 `json:"rate_limit,omitempty"`
}

// DepositResult reports how much of a deposit the container accepted.
type DepositResult struct {
	Accepted  itemstack.Stack `json:"accepted"`
	Remainder itemstack.Stack `json:"remainder"`
}

// Service handles container operations.
type Service struct {
	repo     *Repository
	defaults inventory.Config
	logger   *zap.Logger
}

// NewService creates a new container service.
func NewService(repo *Repository, defaults inventory.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// Repository returns the underlying repository.
func (s *Service) Repository() *Repository {
	return s.repo
}

// List returns all containers.
func (s *Service) List(ctx context.Context) ([]models.Container, error) {
	return s.repo.List(ctx)
}

// Show returns a single container.
func (s *Service) Show(ctx context.Context, name string) (*models.Container, error) {
	return s.repo.Get(ctx, name)
}

// Create validates req and persists an empty container.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Container, error) {
	c := &models.Container{
		Name:      req.Name,
		Slots:     s.defaults.DefaultSlots,
		Capacity:  s.defaults.DefaultCapacity,
		RateLimit: s.defaults.DefaultRateLimit,
	}
	if req.Slots != nil {
		c.Slots = *req.Slots
	}
	if req.Capacity != nil {
		c.Capacity = *req.Capacity
	}
	if req.RateLimit != nil {
		c.RateLimit = *req.RateLimit
	}

	switch {
	case c.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	case c.Slots < 0:
		return nil, fmt.Errorf("%w: slots must not be negative", ErrInvalid)
	case c.Capacity <= 0:
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalid)
	case c.RateLimit < 0:
		return nil, fmt.Errorf("%w: rate limit must not be negative", ErrInvalid)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Container created",
		zap.String("container", c.Name),
		zap.Int("slots", c.Slots),
		zap.Int64("capacity", c.Capacity),
		zap.Int64("rate_limit", c.RateLimit),
	)
	return c, nil
}

// Deposit inserts stack into the named container, subject to its capacity and
// rate limit, and persists the result.
func (s *Service) Deposit(ctx context.Context, name string, stack itemstack.Stack) (*DepositResult, error) {
	if stack.Item == "" || stack.Count <= 0 {
		return nil, fmt.Errorf("%w: deposit needs an item and a positive count", ErrInvalid)
	}

	result := &DepositResult{Remainder: stack}
	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		c, inv, err := s.repo.Load(tx, name)
		if err != nil {
			return err
		}

		accepted := transfer.InsertQuantity(inv, stack, false)
		if accepted == 0 {
			return nil
		}
		result.Accepted = itemstack.Matcher{}.WithQuantity(stack, accepted)
		result.Remainder = itemstack.Matcher{}.WithQuantity(stack, stack.Count-accepted)
		return s.repo.Save(tx, c, inv)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deposit completed",
		zap.String("container", name),
		zap.Stringer("accepted", result.Accepted),
		zap.Int64("remainder", result.Remainder.Count),
	)
	return result, nil
}

// ReadFixture decodes a YAML fixture document.
func ReadFixture(r io.Reader) (*models.Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fixture models.Fixture
	if err := dec.Decode(&fixture); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &fixture, nil
}

// depositAll repeats Deposit until the container takes nothing more, so the
// rate limit does not cap what a fixture can load. It returns what is left.
func (s *Service) depositAll(ctx context.Context, name string, stack itemstack.Stack) (itemstack.Stack, error) {
	for stack.Count > 0 {
		res, err := s.Deposit(ctx, name, stack)
		if err != nil {
			return stack, err
		}
		if res.Accepted.Count == 0 {
			break
		}
		stack = res.Remainder
	}
	return stack, nil
}

// Import creates the fixture's missing containers and deposits their contents.
// It returns the number of containers created.
func (s *Service) Import(ctx context.Context, fixture *models.Fixture) (int, error) {
	created := 0
	for _, fc := range fixture.Containers {
		_, err := s.repo.Get(ctx, fc.Name)
		switch {
		case errors.Is(err, ErrNotFound):
			req := CreateRequest{Name: fc.Name, Slots: fc.Slots, Capacity: fc.Capacity, RateLimit: fc.RateLimit}
			if _, err := s.Create(ctx, req); err != nil {
				return created, err
			}
			created++
		case err != nil:
			return created, err
		default:
			s.logger.Debug("Container already exists", zap.String("container", fc.Name))
		}

		for _, stack := range fc.Contents {
			remainder, err := s.depositAll(ctx, fc.Name, stack)
			if err != nil {
				return created, err
			}
			if remainder.Count > 0 {
				s.logger.Warn("Fixture contents did not fit",
					zap.String("container", fc.Name),
					zap.Stringer("remainder", remainder),
				)
			}
		}
	}
	return created, nil
}
