package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/deppfellow/go-cats/internal/model"
	"github.com/deppfellow/go-cats/internal/repository"
	"github.com/deppfellow/go-cats/internal/server"
)

// CatsService is the storage service for cats.
// Both operations are total: neither can fail.
type CatsService struct {
	server  *server.Server
	repo    *repository.CatRepository
	created prometheus.Counter
}

// NewCatsService returns a CatsService backed by repo.
func NewCatsService(s *server.Server, repo *repository.CatRepository) *CatsService {
	return &CatsService{
		server:  s,
		repo:    repo,
		created: promauto.With(s.Metrics).NewCounter(prometheus.CounterOpts{
			Name: "cats_created_total",
			Help: "Number of cats stored since process start.",
		}),
	}
}

// Create appends cat to the end of the stored sequence.
func (s *CatsService) Create(ctx context.Context, cat model.Cat) {
	size := s.repo.Append(ctx, cat)
	s.created.Inc()

	s.server.Logger.Debug().
		Str("service", "cats").
		Str("name", cat.Name).
		Int("stored", size).
		Msg("cat created")
}

// FindAll returns every stored cat in insertion order.
func (s *CatsService) FindAll(ctx context.Context) []model.Cat {
	return s.repo.All(ctx)
}

// Count returns the number of stored cats.
func (s *CatsService) Count(ctx context.Context) int {
	return s.repo.Len(ctx)
}
