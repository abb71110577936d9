package repository

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/deppfellow/go-cats/internal/model"
)

// CatRepository is an insertion-ordered, in-memory sequence of cats.
//
// There is no identity, no deduplication and no index. The mutex makes
// concurrent requests safe; order is the order in which Append acquires it.
type CatRepository struct {
	mu   sync.RWMutex
	cats []model.Cat
	log  *zerolog.Logger
}

// NewCatRepository returns an empty repository.
func NewCatRepository(logger *zerolog.Logger) *CatRepository {
	return &CatRepository{
		cats: []model.Cat{},
		log:  logger,
	}
}

// Append adds cat to the end of the sequence and returns the new length.
func (r *CatRepository) Append(_ context.Context, cat model.Cat) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cats = append(r.cats, cat)

	r.log.Debug().
		Str("repository", "cats").
		Int("size", len(r.cats)).
		Msg("cat appended")

	return len(r.cats)
}

// All returns a copy of the sequence in insertion order.
// The copy keeps the stored slice private to the repository.
func (r *CatRepository) All(_ context.Context) []model.Cat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Cat, len(r.cats))
	copy(all, r.cats)

	return all
}

// Len returns the number of stored cats.
func (r *CatRepository) Len(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.cats)
}
