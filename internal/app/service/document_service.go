package service

import (
	"context"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
	"github.com/Hadjerbacha/cetic-ged/internal/core/ports"
)

type DocumentService struct {
	documentRepository ports.DocumentRepository
	fileStore          ports.FileStore
}

var _ ports.DocumentService = (*DocumentService)(nil)

func NewDocumentService(documentRepository ports.DocumentRepository, fileStore ports.FileStore) *DocumentService {
	return &DocumentService{
		documentRepository: documentRepository,
		fileStore:          fileStore,
	}
}

func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.documentRepository.ListAll(ctx)
}

func (s *DocumentService) Upload(ctx context.Context, name string, file *multipart.FileHeader) (domain.Document, error) {
	if file == nil {
		return domain.Document{}, domain.ErrInvalidInput
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = file.Filename
	}

	publicPath, err := s.fileStore.Save(file)
	if err != nil {
		return domain.Document{}, err
	}

	document, err := s.documentRepository.Create(ctx, name, publicPath)
	if err != nil {
		if removeErr := s.fileStore.Remove(publicPath); removeErr != nil {
			zap.L().Warn("failed to remove orphaned document upload",
				zap.String("file_path", publicPath),
				zap.Error(removeErr),
			)
		}
		return domain.Document{}, err
	}

	return document, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uint64) error {
	filePath, err := s.documentRepository.FindPath(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documentRepository.Delete(ctx, id); err != nil {
		return err
	}

	if removeErr := s.fileStore.Remove(filePath); removeErr != nil {
		zap.L().Warn("failed to remove file of deleted document",
			zap.Uint64("document_id", id),
			zap.String("file_path", filePath),
			zap.Error(removeErr),
		)
	}

	return nil
}
