package upload

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	uploadsvc "github.com/sahilchouksey/college-connect/services/upload"
	"github.com/sahilchouksey/college-connect/utils/response"
	"github.com/sahilchouksey/college-connect/utils/validation"
)

// UploadHandler runs the upload-save-verify protocol for profile photos,
// certificates and payment screenshots. Each request gets its own
// uploader instance; concurrent uploads to the same field are not
// deduplicated (last write wins remotely).
type UploadHandler struct {
	blobs     uploadsvc.BlobStore
	records   uploadsvc.RecordStore
	validator *validation.Validator
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(blobs uploadsvc.BlobStore, records uploadsvc.RecordStore) *UploadHandler {
	return &UploadHandler{
		blobs:     blobs,
		records:   records,
		validator: validation.NewValidator(),
	}
}

// Upload handles POST /api/v1/uploads (multipart)
// Form fields: file, folder, record_id, field_name.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "file is required")
	}

	folderKey := c.FormValue("folder")
	recordID := c.FormValue("record_id")
	fieldName := c.FormValue("field_name")
	if folderKey == "" || recordID == "" || fieldName == "" {
		return response.BadRequest(c, "folder, record_id and field_name are required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "failed to read uploaded file")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = uploadsvc.ContentTypeFor(fileHeader.Filename)
	}

	uploader := uploadsvc.NewUploader(h.blobs, h.records)
	url, err := uploader.UploadAndVerify(c.Context(), data, contentType, folderKey, recordID, fieldName)
	if err != nil {
		var uploadErr *uploadsvc.UploadError
		if errors.As(err, &uploadErr) {
			// Fatal for this attempt: the caller keeps any existing
			// value and the user must re-select the file.
			return response.BadGateway(c, "Upload failed – check connection or permissions.")
		}

		var syncErr *uploadsvc.SyncError
		if errors.As(err, &syncErr) {
			// The URL is usable; only the remote record is unverified.
			return response.SuccessWithMessage(c, "Sync Failed – Tap to Retry", fiber.Map{
				"url":         syncErr.URL,
				"sync_status": uploadsvc.StateFailed.String(),
				"attempts":    syncErr.Attempts,
			})
		}
		return response.InternalServerError(c, "")
	}

	return response.Success(c, fiber.Map{
		"url":         url,
		"sync_status": uploadsvc.StateSynced.String(),
	})
}

// RetryRequest re-enters save+verify with an already-uploaded URL.
type RetryRequest struct {
	URL       string `json:"url" validate:"required,url"`
	RecordID  string `json:"record_id" validate:"required"`
	FieldName string `json:"field_name" validate:"required"`
}

// Retry handles POST /api/v1/uploads/retry
// No re-upload happens; only the record save and verification run again.
func (h *UploadHandler) Retry(c *fiber.Ctx) error {
	var req RetryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	uploader := uploadsvc.NewUploader(h.blobs, h.records)
	if err := uploader.Retry(c.Context(), req.URL, req.RecordID, req.FieldName); err != nil {
		var syncErr *uploadsvc.SyncError
		if errors.As(err, &syncErr) {
			return response.SuccessWithMessage(c, "Sync Failed – Tap to Retry", fiber.Map{
				"url":         syncErr.URL,
				"sync_status": uploadsvc.StateFailed.String(),
				"attempts":    syncErr.Attempts,
			})
		}
		return response.InternalServerError(c, "")
	}

	return response.Success(c, fiber.Map{
		"url":         req.URL,
		"sync_status": uploadsvc.StateSynced.String(),
	})
}
