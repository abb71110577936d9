package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/go-cats/internal/config"
	"github.com/deppfellow/go-cats/internal/model"
	"github.com/deppfellow/go-cats/internal/repository"
	"github.com/deppfellow/go-cats/internal/server"
	"github.com/deppfellow/go-cats/internal/service"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	logger := zerolog.Nop()
	s := server.New(config.Default(), &logger, nil)

	return service.NewServices(s, repository.NewRepositories(s))
}

func TestCatsService_FindAll(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		services := newTestServices(t)

		assert.Empty(t, services.Cats.FindAll(context.Background()))
	})

	t.Run("insertion order", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		services := newTestServices(t)

		want := make([]model.Cat, 0, 10)
		for i := 0; i < 10; i++ {
			cat := model.Cat{Name: fmt.Sprintf("cat-%d", i), Age: i, Breed: "tabby"}
			want = append(want, cat)
			services.Cats.Create(ctx, cat)
		}

		assert.Equal(t, want, services.Cats.FindAll(ctx))
	})
}

func TestCatsService_Create(t *testing.T) {
	t.Parallel()

	t.Run("count grows by one", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		services := newTestServices(t)

		inputs := []model.Cat{
			{Name: "Tom", Age: 3, Breed: "tabby"},
			{},
			{Name: "Tom", Age: 3, Breed: "tabby"},
			{Name: "", Age: -1, Breed: "no checks on age"},
		}

		for i, cat := range inputs {
			services.Cats.Create(ctx, cat)
			assert.Equal(t, i+1, services.Cats.Count(ctx))
		}
	})

	t.Run("round trip keeps every field", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		services := newTestServices(t)

		dto := model.CreateCatDto{Name: "Tom", Age: 3, Breed: "tabby"}
		services.Cats.Create(ctx, dto.ToCat())

		all := services.Cats.FindAll(ctx)
		if assert.Len(t, all, 1) {
			assert.Equal(t, dto.Name, all[0].Name)
			assert.Equal(t, dto.Age, all[0].Age)
			assert.Equal(t, dto.Breed, all[0].Breed)
		}
	})

	t.Run("services do not share storage", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		a := newTestServices(t)
		b := newTestServices(t)

		a.Cats.Create(ctx, model.Cat{Name: "Tom"})

		assert.Equal(t, 1, a.Cats.Count(ctx))
		assert.Equal(t, 0, b.Cats.Count(ctx))
	})
}
