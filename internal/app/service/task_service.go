package service

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
	"github.com/Hadjerbacha/cetic-ged/internal/core/ports"
)

const (
	// assignedTaskTitle is the placeholder title for tasks created through
	// the assignment path, which carries no title of its own.
	assignedTaskTitle = "Assigned Task"
	// assignmentLeadDays is the default due-date horizon for assigned tasks.
	assignmentLeadDays = 7
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
	fileStore      ports.FileStore
	now            func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository, fileStore ports.FileStore) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		userRepository: userRepository,
		fileStore:      fileStore,
		now:            time.Now,
	}
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput, file *multipart.FileHeader) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.DueDate.IsZero() {
		return domain.Task{}, domain.ErrInvalidInput
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}

	filePath, err := s.storeUpload(file)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.Create(ctx, domain.TaskRecord{
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		FilePath:    filePath,
		Notify:      input.Notify,
		Status:      domain.TaskStatusPending,
	})
	if err != nil {
		s.discardUpload(filePath)
		return domain.Task{}, err
	}

	return task, nil
}

// Assign creates a task through the assignment workflow: every assignee id
// must reference an existing user, checked with a single set-membership
// query before anything is persisted. Duplicate ids are collapsed.
func (s *TaskService) Assign(ctx context.Context, input domain.AssignTaskInput, file *multipart.FileHeader) (domain.Task, error) {
	assigneeIDs := dedupeIDs(input.AssigneeIDs)

	count, err := s.userRepository.CountByIDs(ctx, assigneeIDs)
	if err != nil {
		return domain.Task{}, err
	}
	if count != len(assigneeIDs) {
		return domain.Task{}, domain.ErrUnknownAssignee
	}

	filePath, err := s.storeUpload(file)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.now()
	note := input.Note
	record := domain.TaskRecord{
		Title:          assignedTaskTitle,
		Description:    &note,
		DueDate:        now.AddDate(0, 0, assignmentLeadDays),
		Priority:       domain.DefaultPriority,
		FilePath:       filePath,
		Notify:         input.Notify,
		AssignedTo:     assigneeIDs,
		AssignmentNote: &note,
		AssignedAt:     &now,
		Status:         domain.TaskStatusAssigned,
	}
	if input.AssignerID != 0 {
		assignerID := input.AssignerID
		record.AssignedBy = &assignerID
	}

	task, err := s.taskRepository.Create(ctx, record)
	if err != nil {
		s.discardUpload(filePath)
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListAll(ctx)
}

// Update replaces every task field. When a new attachment comes with the
// request, the previous file is removed only after the row update has
// succeeded, so the row never points at a file that no longer exists.
func (s *TaskService) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput, file *multipart.FileHeader) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.DueDate.IsZero() {
		return domain.Task{}, domain.ErrInvalidInput
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}

	previousPath, err := s.taskRepository.FindAttachment(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	newPath, err := s.storeUpload(file)
	if err != nil {
		return domain.Task{}, err
	}

	filePath := previousPath
	if newPath != nil {
		filePath = newPath
	}

	task, err := s.taskRepository.Update(ctx, id, domain.UpdateTaskRecord{
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		FilePath:    filePath,
		Notify:      input.Notify,
	})
	if err != nil {
		s.discardUpload(newPath)
		return domain.Task{}, err
	}

	if newPath != nil && previousPath != nil && *previousPath != *newPath {
		if removeErr := s.fileStore.Remove(*previousPath); removeErr != nil {
			zap.L().Warn("failed to remove replaced attachment",
				zap.Uint64("task_id", id),
				zap.String("file_path", *previousPath),
				zap.Error(removeErr),
			)
		}
	}

	return task, nil
}

func (s *TaskService) ChangeStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidInput
	}
	return s.taskRepository.PatchStatus(ctx, id, status)
}

func (s *TaskService) Delete(ctx context.Context, id uint64) error {
	attachment, err := s.taskRepository.FindAttachment(ctx, id)
	if err != nil {
		return err
	}

	if err := s.taskRepository.Delete(ctx, id); err != nil {
		return err
	}

	if attachment != nil {
		if removeErr := s.fileStore.Remove(*attachment); removeErr != nil {
			zap.L().Warn("failed to remove attachment of deleted task",
				zap.Uint64("task_id", id),
				zap.String("file_path", *attachment),
				zap.Error(removeErr),
			)
		}
	}

	return nil
}

func (s *TaskService) storeUpload(file *multipart.FileHeader) (*string, error) {
	if file == nil {
		return nil, nil
	}

	publicPath, err := s.fileStore.Save(file)
	if err != nil {
		return nil, err
	}
	return &publicPath, nil
}

// discardUpload is the compensating action when a row write fails after the
// file was already stored. Best effort: a failure here is logged, never
// surfaced.
func (s *TaskService) discardUpload(publicPath *string) {
	if publicPath == nil {
		return
	}
	if err := s.fileStore.Remove(*publicPath); err != nil {
		zap.L().Warn("failed to remove orphaned upload",
			zap.String("file_path", *publicPath),
			zap.Error(err),
		)
	}
}

func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
