// README: Area service: validation and id generation on top of the store.
package area

import (
	"context"

	"github.com/google/uuid"

	"parkfee/internal/types"
)

// Repository is the store surface the service depends on. *Store satisfies
// it; tests substitute an in-memory fake.
type Repository interface {
	Insert(ctx context.Context, a *Area) error
	List(ctx context.Context) ([]Area, error)
	Get(ctx context.Context, id types.ID) (*Area, error)
	Update(ctx context.Context, a Area) error
	Delete(ctx context.Context, id types.ID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name string, rate1, rate2, discount float64) (*Area, error) {
	a := &Area{
		ID:       types.ID(uuid.NewString()),
		Name:     name,
		Rate1:    rate1,
		Rate2:    rate2,
		Discount: discount,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Area, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Area, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, a Area) error {
	if a.ID == "" {
		return ErrBadRequest
	}
	if err := a.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.repo.Delete(ctx, id)
}
