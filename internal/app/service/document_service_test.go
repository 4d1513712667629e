package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
)

type documentRepositoryMock struct {
	mock.Mock
}

func (m *documentRepositoryMock) Create(ctx context.Context, name, filePath string) (domain.Document, error) {
	args := m.Called(ctx, name, filePath)
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *documentRepositoryMock) ListAll(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)

	var documents []domain.Document
	if value := args.Get(0); value != nil {
		documents = value.([]domain.Document)
	}
	return documents, args.Error(1)
}

func (m *documentRepositoryMock) FindPath(ctx context.Context, id uint64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *documentRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDocumentService_Upload_RequiresFile(t *testing.T) {
	service := NewDocumentService(new(documentRepositoryMock), &fileStoreStub{})

	_, err := service.Upload(context.Background(), "Contract", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_Upload_FallsBackToFilename(t *testing.T) {
	documentRepo := new(documentRepositoryMock)
	documentRepo.On("Create", mock.Anything, "report.pdf", "/uploads/stub.pdf").
		Return(domain.Document{ID: 1, Name: "report.pdf"}, nil).Once()

	service := NewDocumentService(documentRepo, &fileStoreStub{})

	document, err := service.Upload(context.Background(), "   ", attachmentHeader())
	require.NoError(t, err)
	require.Equal(t, "report.pdf", document.Name)
	documentRepo.AssertExpectations(t)
}

func TestDocumentService_Upload_DiscardsFileWhenInsertFails(t *testing.T) {
	documentRepo := new(documentRepositoryMock)
	documentRepo.On("Create", mock.Anything, "Contract", "/uploads/stub.pdf").
		Return(domain.Document{}, errors.New("insert failed")).Once()

	store := &fileStoreStub{}
	service := NewDocumentService(documentRepo, store)

	_, err := service.Upload(context.Background(), "Contract", attachmentHeader())
	require.Error(t, err)
	require.Equal(t, []string{"/uploads/stub.pdf"}, store.removed)
}

func TestDocumentService_Delete_RemovesFile(t *testing.T) {
	documentRepo := new(documentRepositoryMock)
	documentRepo.On("FindPath", mock.Anything, uint64(4)).Return("/uploads/contract.pdf", nil).Once()
	documentRepo.On("Delete", mock.Anything, uint64(4)).Return(nil).Once()

	store := &fileStoreStub{}
	service := NewDocumentService(documentRepo, store)

	require.NoError(t, service.Delete(context.Background(), 4))
	require.Equal(t, []string{"/uploads/contract.pdf"}, store.removed)
	documentRepo.AssertExpectations(t)
}

func TestDocumentService_Delete_NotFound(t *testing.T) {
	documentRepo := new(documentRepositoryMock)
	documentRepo.On("FindPath", mock.Anything, uint64(999)).
		Return("", domain.ErrDocumentNotFound).Once()

	store := &fileStoreStub{}
	service := NewDocumentService(documentRepo, store)

	require.ErrorIs(t, service.Delete(context.Background(), 999), domain.ErrDocumentNotFound)
	require.Empty(t, store.removed)
}
