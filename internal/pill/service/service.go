// Package service implements the pill use cases: one method per command or
// query exposed to the transport layer. Validation of request fields happens
// at the transport boundary; this layer owns id generation, store
// orchestration, and error translation.
package service

import (
	"context"
	"errors"
	"log/slog"

	"pillbox/internal/pill/models"
	"pillbox/internal/platform/metrics"
	id "pillbox/pkg/domain"
	dErrors "pillbox/pkg/domain-errors"
	"pillbox/pkg/platform/sentinel"
)

// PillStore is the repository contract the service depends on. Any
// implementation with these semantics works; see internal/pill/store.
type PillStore interface {
	Save(ctx context.Context, pill *models.Pill) error
	FindByID(ctx context.Context, pillID id.PillID) (*models.Pill, error)
	FindAll(ctx context.Context) ([]*models.Pill, error)
}

// CreatePillCommand carries the input for CreatePill.
type CreatePillCommand struct {
	Title   string
	Content string
}

// Service orchestrates pill commands and queries. It holds no aggregate
// state between calls; the store owns every pill.
type Service struct {
	pills   PillStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(pills PillStore, opts ...Option) *Service {
	s := &Service{
		pills:  pills,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePill generates a fresh id, constructs the aggregate, and saves it.
// There is no duplicate detection: two pills may share a title.
func (s *Service) CreatePill(ctx context.Context, cmd CreatePillCommand) (id.PillID, error) {
	pillID := id.NewPillID()
	pill := models.NewPill(pillID, cmd.Title, cmd.Content)

	if err := s.pills.Save(ctx, pill); err != nil {
		return id.PillID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save pill")
	}

	s.logger.InfoContext(ctx, "pill created", "pill_id", pillID.String())
	s.metrics.IncrementPillsCreated()
	return pillID, nil
}

// FindPill returns a single pill, mapping store absence to CodeNotFound.
func (s *Service) FindPill(ctx context.Context, pillID id.PillID) (*models.Pill, error) {
	pill, err := s.pills.FindByID(ctx, pillID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "pill not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find pill")
	}
	return pill, nil
}

// FindAllPills returns the full snapshot of pills.
func (s *Service) FindAllPills(ctx context.Context) ([]*models.Pill, error) {
	pills, err := s.pills.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pills")
	}
	return pills, nil
}
