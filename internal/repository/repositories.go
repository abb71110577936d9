package repository

import (
	"github.com/deppfellow/go-cats/internal/server"
)

// Repositories is a container for all repository instances.
//
// It is built once at startup and handed to service.NewServices, which is the only
// consumer; handlers never see a repository.
type Repositories struct {
	Cats *CatRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Cats: NewCatRepository(s.Logger),
	}
}
