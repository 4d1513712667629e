package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
	"github.com/Hadjerbacha/cetic-ged/internal/core/ports"
)

type DocumentRepository struct {
	db *sqlx.DB
}

type documentRow struct {
	ID       uint64    `db:"id"`
	Name     string    `db:"name"`
	FilePath string    `db:"file_path"`
	Date     time.Time `db:"date"`
}

var _ ports.DocumentRepository = (*DocumentRepository)(nil)

func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, name, filePath string) (domain.Document, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO documents (name, file_path) VALUES (?, ?)",
		name, filePath,
	)
	if err != nil {
		return domain.Document{}, err
	}

	documentID, err := result.LastInsertId()
	if err != nil {
		return domain.Document{}, err
	}

	var row documentRow
	if err := r.db.GetContext(ctx, &row,
		"SELECT id, name, file_path, date FROM documents WHERE id = ?",
		documentID,
	); err != nil {
		return domain.Document{}, err
	}

	return mapDocumentRowToDomainDocument(row), nil
}

func (r *DocumentRepository) ListAll(ctx context.Context) ([]domain.Document, error) {
	var rows []documentRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT id, name, file_path, date FROM documents ORDER BY date DESC, id DESC",
	); err != nil {
		return nil, err
	}

	documents := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, mapDocumentRowToDomainDocument(row))
	}

	return documents, nil
}

func (r *DocumentRepository) FindPath(ctx context.Context, id uint64) (string, error) {
	var filePath string
	err := r.db.GetContext(ctx, &filePath, "SELECT file_path FROM documents WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrDocumentNotFound
	}
	return filePath, err
}

func (r *DocumentRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrDocumentNotFound
	}

	return nil
}

func mapDocumentRowToDomainDocument(row documentRow) domain.Document {
	return domain.Document{
		ID:       row.ID,
		Name:     row.Name,
		FilePath: row.FilePath,
		Date:     row.Date,
	}
}
