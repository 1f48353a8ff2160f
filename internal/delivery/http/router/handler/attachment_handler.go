package handler

import (
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxAttachmentSize caps uploads at 25 MiB.
const maxAttachmentSize = 25 << 20

// AttachmentHandler holds dependencies for job attachment handlers.
type AttachmentHandler struct {
	uc usecase.AttachmentUsecase
}

// NewAttachmentHandler is the constructor for AttachmentHandler, injected by Fx.
func NewAttachmentHandler(uc usecase.AttachmentUsecase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Upload stores a multipart file against a job the caller can reach.
func (h *AttachmentHandler) Upload(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}
	if fileHeader.Size > maxAttachmentSize {
		return response.BadRequest(c, "FILE_TOO_LARGE", "Attachment exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := h.uc.UploadAttachment(c.Request().Context(), usecase.UploadAttachmentInput{
		JobID:       jobID,
		Actor:       actor,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attachment, "Attachment uploaded successfully")
}

// Download streams an attachment's blob back to the client.
func (h *AttachmentHandler) Download(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid attachment ID")
	}

	attachment, reader, err := h.uc.GetAttachment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+attachment.FileName+`"`)

	return c.Stream(http.StatusOK, attachment.ContentType, reader)
}

// List returns the attachment metadata for a job the caller can reach.
func (h *AttachmentHandler) List(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	attachments, err := h.uc.ListJobAttachments(c.Request().Context(), jobID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attachments, "Attachments retrieved successfully")
}

// Delete removes an attachment's blob and metadata.
func (h *AttachmentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid attachment ID")
	}

	if err := h.uc.DeleteAttachment(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attachment deleted successfully")
}
