package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/dto"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/mapper"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/middleware"
	"github.com/Hadjerbacha/cetic-ged/internal/adapter/http/validation"
	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
	"github.com/Hadjerbacha/cetic-ged/internal/core/ports"
	"github.com/Hadjerbacha/cetic-ged/pkg/apierrors"
)

type DocumentHandler struct {
	documentService ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	lang := middleware.GetLang(c)

	documents, err := h.documentService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list documents", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListDocuments, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDocumentItems(documents))
}

func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	lang := middleware.GetLang(c)

	var form dto.DocumentForm
	_ = c.ShouldBind(&form)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFileRequired, lang),
		)
		return
	}

	if err := validation.CheckFileSize(file, validation.MaxDocumentSize); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgFileTooLarge, lang),
		)
		return
	}

	document, err := h.documentService.Upload(c.Request.Context(), form.Name, file)
	if err != nil {
		zap.L().Error("failed to upload document", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUploadDocument, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDocumentItem(document))
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	lang := middleware.GetLang(c)

	documentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || documentID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDocumentID, lang),
		)
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), documentID); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgDocumentNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete document", zap.Uint64("document_id", documentID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteDocument, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgDocumentDeleted, lang),
	})
}
