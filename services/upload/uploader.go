package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// BlobStore uploads binary assets and returns their public URL.
type BlobStore interface {
	Upload(ctx context.Context, folderKey string, data []byte, contentType string) (string, error)
}

// RecordStore persists and reads back a file URL under a record field.
type RecordStore interface {
	SaveFileURL(ctx context.Context, recordID, fieldName, fileURL string) error
	FileURL(ctx context.Context, recordID, fieldName string) (string, error)
}

// State is the uploader's position in the upload-save-verify protocol.
type State int

const (
	StateIdle State = iota
	StateUploading
	StateVerifying
	StateSynced
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateVerifying:
		return "verifying"
	case StateSynced:
		return "synced"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UploadError means the blob upload itself failed. The attempt is over;
// no save or verify step runs and the caller keeps any existing value.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload failed: %v", e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

// SyncError means the blob was uploaded but the saved URL never verified
// within the attempt budget. URL is usable and retained so a manual retry
// can re-enter the save+verify loop without re-uploading.
type SyncError struct {
	URL      string
	Attempts int
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync failed after %d attempts", e.Attempts)
}

const (
	defaultVerifyDelay = 2 * time.Second
	defaultMaxAttempts = 3
)

// Uploader runs the upload -> save -> verify protocol with a bounded
// retry on the save+verify step. Not safe for concurrent use: each upload
// operation gets its own Uploader, and near-simultaneous uploads to the
// same field are last-write-wins on the remote side.
type Uploader struct {
	blobs       BlobStore
	records     RecordStore
	verifyDelay time.Duration
	maxAttempts int
	state       State
	log         *logrus.Entry
}

// NewUploader creates an uploader with the fixed 2 s pre-verify delay and
// the 3-attempt budget.
func NewUploader(blobs BlobStore, records RecordStore) *Uploader {
	return &Uploader{
		blobs:       blobs,
		records:     records,
		verifyDelay: defaultVerifyDelay,
		maxAttempts: defaultMaxAttempts,
		state:       StateIdle,
		log:         logrus.WithField("component", "upload"),
	}
}

// State reports where the protocol currently stands.
func (u *Uploader) State() State { return u.state }

// UploadAndVerify uploads the asset, saves its URL under the record field
// and verifies the save stuck. The returned URL is valid whenever the
// upload step succeeded, even when the error is a *SyncError.
func (u *Uploader) UploadAndVerify(ctx context.Context, data []byte, contentType, folderKey, recordID, fieldName string) (string, error) {
	u.state = StateUploading

	url, err := u.blobs.Upload(ctx, folderKey, data, contentType)
	if err != nil {
		u.state = StateFailed
		return "", &UploadError{Err: err}
	}
	u.log.WithFields(logrus.Fields{"folder": folderKey, "field": fieldName}).
		Info("asset uploaded")

	if err := u.saveAndVerify(ctx, url, recordID, fieldName); err != nil {
		return url, err
	}
	return url, nil
}

// Retry re-enters the save+verify loop with an already-uploaded URL. It is
// the manual-retry affordance after a *SyncError; the asset is never
// re-uploaded.
func (u *Uploader) Retry(ctx context.Context, url, recordID, fieldName string) error {
	return u.saveAndVerify(ctx, url, recordID, fieldName)
}

// saveAndVerify persists the URL, waits out the eventual-consistency
// delay, then reads the field back and trim-compares. Each mismatch or
// save failure consumes one attempt; re-verification is idempotent.
func (u *Uploader) saveAndVerify(ctx context.Context, url, recordID, fieldName string) error {
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		u.state = StateVerifying
		u.log.WithFields(logrus.Fields{"field": fieldName, "attempt": attempt}).
			Debug("verification attempt")

		if err := u.records.SaveFileURL(ctx, recordID, fieldName, url); err != nil {
			u.log.WithError(err).WithField("field", fieldName).Warn("save failed")
			continue
		}

		if err := u.wait(ctx); err != nil {
			u.state = StateFailed
			return err
		}

		got, err := u.records.FileURL(ctx, recordID, fieldName)
		if err != nil {
			u.log.WithError(err).WithField("field", fieldName).Warn("verify read failed")
			continue
		}
		if strings.TrimSpace(got) == strings.TrimSpace(url) {
			u.state = StateSynced
			return nil
		}
	}

	u.state = StateFailed
	return &SyncError{URL: url, Attempts: u.maxAttempts}
}

func (u *Uploader) wait(ctx context.Context) error {
	timer := time.NewTimer(u.verifyDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
