package repo

import (
	"context"

	dom "github.com/aubertlenno/Todo-Backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	UpdateText(ctx context.Context, id int64, text string) (dom.Todo, error)
	UpdateStatus(ctx context.Context, id int64, completed bool) (dom.Todo, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByText(ctx context.Context, text string) (int64, error)
	DeleteAll(ctx context.Context) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	// Zero time means "now"; the column default handles it.
	var when any
	if !t.Time.IsZero() {
		when = t.Time
	}
	query := `
		INSERT INTO todos (text, completed, time)
		VALUES ($1, $2, COALESCE($3::timestamptz, now()))
		RETURNING id, text, completed, time`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.Text, t.Completed, when).Scan(
		&out.ID, &out.Text, &out.Completed, &out.Time,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	var t dom.Todo
	err := r.db.QueryRow(ctx,
		`SELECT id, text, completed, time FROM todos WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Text, &t.Completed, &t.Time)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, text, completed, time FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.Time); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) UpdateText(ctx context.Context, id int64, text string) (dom.Todo, error) {
	query := `
		UPDATE todos SET text = $2
		WHERE id = $1
		RETURNING id, text, completed, time`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, text).Scan(
		&t.ID, &t.Text, &t.Completed, &t.Time,
	)
	return t, err
}

func (r *PGTodoRepo) UpdateStatus(ctx context.Context, id int64, completed bool) (dom.Todo, error) {
	query := `
		UPDATE todos SET completed = $2
		WHERE id = $1
		RETURNING id, text, completed, time`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, completed).Scan(
		&t.ID, &t.Text, &t.Completed, &t.Time,
	)
	return t, err
}

// Delete removes the todo and returns the number of rows deleted (0 or 1).
func (r *PGTodoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByText removes every todo whose text matches exactly. One statement,
// so the multi-row delete is atomic.
func (r *PGTodoRepo) DeleteByText(ctx context.Context, text string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE text = $1`, text)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteAll empties the todos table.
func (r *PGTodoRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM todos`)
	return err
}

var _ TodoRepo = (*PGTodoRepo)(nil)
