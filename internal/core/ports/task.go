package ports

import (
	"context"
	"mime/multipart"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, record domain.TaskRecord) (domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	FindAttachment(ctx context.Context, id uint64) (*string, error)
	Update(ctx context.Context, id uint64, record domain.UpdateTaskRecord) (domain.Task, error)
	PatchStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
}

type TaskService interface {
	Create(ctx context.Context, input domain.CreateTaskInput, file *multipart.FileHeader) (domain.Task, error)
	Assign(ctx context.Context, input domain.AssignTaskInput, file *multipart.FileHeader) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput, file *multipart.FileHeader) (domain.Task, error)
	ChangeStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
}
