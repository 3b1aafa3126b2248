package domain

import "time"

// Todo is the only business entity besides User. Todos are shared:
// there is no owner column, any authenticated user can touch any todo.
type Todo struct {
	ID        int64
	Text      string
	Completed bool
	Time      time.Time
}
