package service

import (
	"context"
	"sort"
	"sync"

	dom "github.com/aubertlenno/Todo-Backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory fakes standing in for Postgres. They speak the same error
// dialect as the real repos (pgx.ErrNoRows, pgconn unique violations) so
// the services' mapping code is exercised for real.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]dom.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[string]dom.User)}
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *memUserRepo) Create(_ context.Context, username, passwordHash string, email *string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	}
	if email != nil {
		for _, u := range r.users {
			if u.Email != nil && *u.Email == *email {
				return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
			}
		}
	}
	u := dom.User{ID: r.nextID, Username: username, PasswordHash: passwordHash, Email: email}
	r.nextID++
	r.users[username] = u
	return u, nil
}

type memTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]dom.Todo
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{nextID: 1, todos: make(map[int64]dom.Todo)}
}

func (r *memTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	r.todos[t.ID] = t
	return t, nil
}

func (r *memTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]dom.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memTodoRepo) UpdateText(_ context.Context, id int64, text string) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Text = text
	r.todos[id] = t
	return t, nil
}

func (r *memTodoRepo) UpdateStatus(_ context.Context, id int64, completed bool) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Completed = completed
	r.todos[id] = t
	return t, nil
}

func (r *memTodoRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return 0, nil
	}
	delete(r.todos, id)
	return 1, nil
}

func (r *memTodoRepo) DeleteByText(_ context.Context, text string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, t := range r.todos {
		if t.Text == text {
			delete(r.todos, id)
			n++
		}
	}
	return n, nil
}

func (r *memTodoRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos = make(map[int64]dom.Todo)
	return nil
}
