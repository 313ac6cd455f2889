package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/circulation"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

// ReportCache keeps the dashboard between requests.
type ReportCache interface {
	GetDashboard(ctx context.Context, days int) (model.Dashboard, bool, error)
	SetDashboard(ctx context.Context, days int, d model.Dashboard) error
	InvalidateDashboard(ctx context.Context) error
}

// SessionStore tracks issued tokens so they can be revoked before they expire.
type SessionStore interface {
	Create(ctx context.Context, sessionID string, memberID int64, ttl time.Duration) error
	Active(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}

// BookSource looks up titles in an external catalog.
type BookSource interface {
	Search(ctx context.Context, query string, limit int) ([]model.OpenLibraryBook, error)
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	policy    circulation.Policy
	publisher kafka.Enqueuer
	reports   ReportCache
	sessions  SessionStore
	tokens    *auth.Manager
	books     BookSource
	now       func() time.Time
}

type Option func(s *Service)

func WithPolicy(p circulation.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithPublisher enables circulation events. Without it nothing is published.
func WithPublisher(p kafka.Enqueuer) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithReportCache(c ReportCache) Option {
	return func(s *Service) {
		s.reports = c
	}
}

func WithSessions(store SessionStore, tokens *auth.Manager) Option {
	return func(s *Service) {
		s.sessions = store
		s.tokens = tokens
	}
}

func WithBookSource(src BookSource) Option {
	return func(s *Service) {
		s.books = src
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		policy: circulation.DefaultPolicy(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publish sends a circulation event after the state change committed.
// Delivery is best effort: failures are logged and never undo the change.
func (s *Service) publish(ev kafka.EventCirculation) {
	if s.reports != nil {
		if err := s.reports.InvalidateDashboard(context.Background()); err != nil {
			s.log.Warn("invalidate dashboard", zap.Error(err))
		}
	}
	if s.publisher == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.Timestamp = s.now()
	if err := s.publisher.Enqueue(kafka.CirculationTopic, strconv.FormatInt(ev.MemberID, 10), ev); err != nil {
		s.log.Error("publish circulation event",
			zap.String("type", string(ev.Type)),
			zap.Int64("memberID", ev.MemberID),
			zap.Error(err))
	}
}
