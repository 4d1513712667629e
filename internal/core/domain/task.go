package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusAssigned   TaskStatus = "assigned"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the four known statuses. Transitions
// between valid statuses are deliberately unrestricted: any value may
// overwrite any other, including completed back to pending.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusAssigned, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// DefaultPriority matches the label used by the create and assign forms.
const DefaultPriority = "Normale"

type Task struct {
	ID             uint64
	Title          string
	Description    *string
	DueDate        time.Time
	Priority       string
	FilePath       *string
	Notify         bool
	AssignedTo     []uint64
	AssignedBy     *uint64
	AssignerName   *string
	AssignmentNote *string
	AssignedAt     *time.Time
	Status         TaskStatus
	CreatedAt      time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     time.Time
	Priority    string
	Notify      bool
}

type UpdateTaskInput struct {
	Title       string
	Description *string
	DueDate     time.Time
	Priority    string
	Notify      bool
}

type AssignTaskInput struct {
	AssigneeIDs []uint64
	Note        string
	Notify      bool
	AssignerID  uint64
}

// TaskRecord carries every column of a task row for insertion. The service
// layer fills it; the repository persists it verbatim.
type TaskRecord struct {
	Title          string
	Description    *string
	DueDate        time.Time
	Priority       string
	FilePath       *string
	Notify         bool
	AssignedTo     []uint64
	AssignedBy     *uint64
	AssignmentNote *string
	AssignedAt     *time.Time
	Status         TaskStatus
}

// UpdateTaskRecord is the full-replace field set applied by an update.
type UpdateTaskRecord struct {
	Title       string
	Description *string
	DueDate     time.Time
	Priority    string
	FilePath    *string
	Notify      bool
}
