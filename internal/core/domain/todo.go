package domain

import "time"

// StatusTodo is the status every item starts with. The status column is a
// free-form tag; "todo" -> "done" is the conventional path but nothing
// enforces a transition graph.
const (
	StatusTodo = "todo"
	StatusDone = "done"
)

type Todo struct {
	ID       int
	Title    string `validate:"required,min=1,max=128"`
	Status   string `validate:"required,max=128"`
	OwnerID  int
	Deadline time.Time
}

func (t *Todo) BelongsTo(userID int) bool {
	return t.OwnerID == userID
}
