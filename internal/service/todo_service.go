package service

import (
	"context"
	"errors"
	"time"

	"github.com/aubertlenno/Todo-Backend/internal/cache"
	dom "github.com/aubertlenno/Todo-Backend/internal/domain"
	"github.com/aubertlenno/Todo-Backend/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create stores a new todo. A zero when means "now".
func (s *TodoService) Create(ctx context.Context, text string, completed bool, when time.Time) (dom.Todo, error) {
	t, err := s.repo.Create(ctx, dom.Todo{
		Text:      text,
		Completed: completed,
		Time:      when,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// UpdateText replaces the text of an existing todo. A missing id is
// ErrNotFound; updates never create rows.
func (s *TodoService) UpdateText(ctx context.Context, id int64, text string) (dom.Todo, error) {
	t, err := s.repo.UpdateText(ctx, id, text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

// UpdateStatus sets the completion flag of an existing todo.
func (s *TodoService) UpdateStatus(ctx context.Context, id int64, completed bool) (dom.Todo, error) {
	t, err := s.repo.UpdateStatus(ctx, id, completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

// DeleteByText removes every todo whose text matches exactly and returns
// how many were removed. Zero matches is ErrNotFound.
func (s *TodoService) DeleteByText(ctx context.Context, text string) (int64, error) {
	n, err := s.repo.DeleteByText(ctx, text)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	s.invalidateCache(ctx)
	return n, nil
}

// DeleteAll empties the store unconditionally.
func (s *TodoService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
