package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	repo_mocks "github.com/Astemirdum/library-circulation/library/internal/repository/mocks"
	"github.com/Astemirdum/library-circulation/library/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

var now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.EventCirculation
}

func (p *fakePublisher) Enqueue(topic, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if topic != kafka.CirculationTopic {
		return errors.Errorf("unexpected topic %s", topic)
	}
	p.events = append(p.events, v.(kafka.EventCirculation))
	return nil
}

func (p *fakePublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type env struct {
	svc  *service.Service
	repo *repo_mocks.MockRepository
	pub  *fakePublisher
}

func newEnv(t *testing.T, opts ...service.Option) env {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(ctrl)
	repo.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	pub := &fakePublisher{}
	opts = append([]service.Option{
		service.WithClock(func() time.Time { return now }),
		service.WithPublisher(pub),
	}, opts...)
	return env{
		svc:  service.NewService(repo, zap.NewNop(), opts...),
		repo: repo,
		pub:  pub,
	}
}

func approvedMember(id int64) model.Member {
	return model.Member{ID: id, Role: model.RoleMember, Status: model.MemberApproved}
}

func availableBook(id int64) model.Book {
	return model.Book{ID: id, Title: "Dune", AvailabilityStatus: model.AvailabilityAvailable}
}
