package mapper

import (
	"time"

	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/dto"
	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
)

func ToDocumentItems(documents []domain.Document) []dto.DocumentItem {
	items := make([]dto.DocumentItem, 0, len(documents))
	for _, document := range documents {
		items = append(items, ToDocumentItem(document))
	}
	return items
}

func ToDocumentItem(document domain.Document) dto.DocumentItem {
	return dto.DocumentItem{
		ID:       document.ID,
		Name:     document.Name,
		FilePath: document.FilePath,
		Date:     document.Date.Format(time.RFC3339),
	}
}
