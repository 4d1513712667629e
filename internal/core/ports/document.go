package ports

import (
	"context"
	"mime/multipart"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
)

type DocumentRepository interface {
	Create(ctx context.Context, name, filePath string) (domain.Document, error)
	ListAll(ctx context.Context) ([]domain.Document, error)
	FindPath(ctx context.Context, id uint64) (string, error)
	Delete(ctx context.Context, id uint64) error
}

type DocumentService interface {
	List(ctx context.Context) ([]domain.Document, error)
	Upload(ctx context.Context, name string, file *multipart.FileHeader) (domain.Document, error)
	Delete(ctx context.Context, id uint64) error
}
