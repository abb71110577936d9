package service

import (
	"github.com/deppfellow/go-cats/internal/repository"
	"github.com/deppfellow/go-cats/internal/server"
)

// Services is the container of all business services.
//
// Each service is constructed exactly once here and shared by every handler
// for the lifetime of the process.
type Services struct {
	Cats *CatsService
}

// NewServices wires every service with its repository.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Cats: NewCatsService(s, repos.Cats),
	}
}
