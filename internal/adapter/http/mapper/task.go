package mapper

import (
	"time"

	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/dto"
	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID,
		Title:      task.Title,
		DueDate:    task.DueDate.Format("2006-01-02"),
		Priority:   task.Priority,
		Notify:     task.Notify,
		AssignedTo: task.AssignedTo,
		Status:     string(task.Status),
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
	}

	if item.AssignedTo == nil {
		item.AssignedTo = []uint64{}
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.FilePath != nil {
		value := *task.FilePath
		item.FilePath = &value
	}

	if task.AssignedBy != nil {
		value := *task.AssignedBy
		item.AssignedBy = &value
	}

	if task.AssignerName != nil {
		value := *task.AssignerName
		item.AssignerName = &value
	}

	if task.AssignmentNote != nil {
		value := *task.AssignmentNote
		item.AssignmentNote = &value
	}

	if task.AssignedAt != nil {
		value := task.AssignedAt.Format(time.RFC3339)
		item.AssignedAt = &value
	}

	return item
}
