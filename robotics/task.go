package robotics

import (
	"fmt"

	"github.com/google/uuid"
)

// Task is a unit of warehouse work. Tasks are shared: the caller that
// creates a task keeps a pointer to it and sees status changes made by the
// robot it is assigned to.
type Task struct {
	ID       string
	Type     TaskType
	Priority Priority
	Status   TaskStatus
}

// NewTask creates a task in the Created state. An empty id is replaced by
// a random UUID.
func NewTask(id string, taskType TaskType, priority Priority) *Task {
	if id == "" {
		id = uuid.NewString()
	}
	return &Task{
		ID:       id,
		Type:     taskType,
		Priority: priority,
		Status:   TaskCreated,
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("%s task %s (priority %s, status %s)", t.Type, t.ID, t.Priority, t.Status)
}
