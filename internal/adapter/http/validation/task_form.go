package validation

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/dto"
	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
)

var (
	ErrInvalidTaskForm = errors.New("invalid task form")
	ErrFileTooLarge    = errors.New("file too large")
)

const (
	// Upload ceilings, matching the limits enforced on each form.
	MaxTaskAttachmentSize = 10 << 20
	MaxDocumentSize       = 50 << 20
)

// BuildCreateTaskInput turns the multipart create/update form into a service
// input. Title and due date are mandatory; notify arrives as the string
// "true"/"false" the way HTML forms send checkboxes.
func BuildCreateTaskInput(form dto.TaskForm) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskForm
	}

	dueDate, err := time.Parse("2006-01-02", form.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskForm
	}

	input := domain.CreateTaskInput{
		Title:    title,
		DueDate:  dueDate,
		Priority: strings.TrimSpace(form.Priority),
		Notify:   form.Notify == "true",
	}

	if description := strings.TrimSpace(form.Description); description != "" {
		input.Description = &description
	}

	return input, nil
}

func BuildUpdateTaskInput(form dto.TaskForm) (domain.UpdateTaskInput, error) {
	input, err := BuildCreateTaskInput(form)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	return domain.UpdateTaskInput{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Notify:      input.Notify,
	}, nil
}

// ParseAssignees decodes the assigned_to form field, a JSON-encoded array of
// user ids. Anything that is not a well-formed array of non-negative
// integers is malformed input.
func ParseAssignees(raw string) ([]uint64, error) {
	var ids []uint64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, domain.ErrMalformedAssignees
	}
	return ids, nil
}

func CheckFileSize(file *multipart.FileHeader, limit int64) error {
	if file == nil {
		return nil
	}
	if file.Size > limit {
		return ErrFileTooLarge
	}
	return nil
}
