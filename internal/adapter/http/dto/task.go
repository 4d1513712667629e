package dto

type TaskItem struct {
	ID             uint64   `json:"id"`
	Title          string   `json:"title"`
	Description    *string  `json:"description,omitempty"`
	DueDate        string   `json:"due_date"`
	Priority       string   `json:"priority"`
	FilePath       *string  `json:"file_path,omitempty"`
	Notify         bool     `json:"notify"`
	AssignedTo     []uint64 `json:"assigned_to"`
	AssignedBy     *uint64  `json:"assigned_by,omitempty"`
	AssignerName   *string  `json:"assigner_name,omitempty"`
	AssignmentNote *string  `json:"assignment_note,omitempty"`
	AssignedAt     *string  `json:"assigned_at,omitempty"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
}

// TaskForm is the multipart form shared by task create and update. The
// optional file part is read separately from the request.
type TaskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	Priority    string `form:"priority"`
	Notify      string `form:"notify"`
}

type AssignTaskForm struct {
	AssignmentNote string `form:"assignment_note"`
	Notify         string `form:"notify"`
	AssignedTo     string `form:"assigned_to"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending assigned in_progress completed"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
