package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SheetClient talks to the Apps-Script-style endpoint that backs the
// remote record store (and, when Spaces is not configured, the blob
// upload). The endpoint speaks URL-encoded form posts and answers with
// plain text: the asset URL on upload, the current raw field value on
// verify.
type SheetClient struct {
	endpoint string
	client   *http.Client
}

// NewSheetClient creates a client for the given script endpoint.
func NewSheetClient(endpoint string) *SheetClient {
	return &SheetClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sends the base64-encoded asset to the script's drive folder and
// returns the URL the script answers with.
func (c *SheetClient) Upload(ctx context.Context, folderKey string, data []byte, contentType string) (string, error) {
	form := url.Values{}
	form.Set("folder", folderKey)
	form.Set("file", base64.StdEncoding.EncodeToString(data))
	form.Set("type", contentType)

	body, err := c.postForm(ctx, form)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(body), nil
}

// SaveFileURL persists the file URL under (recordID, fieldName).
func (c *SheetClient) SaveFileURL(ctx context.Context, recordID, fieldName, fileURL string) error {
	form := url.Values{}
	form.Set("type", "fileUpdate")
	form.Set("id", recordID)
	form.Set("fieldName", fieldName)
	form.Set("fileUrl", fileURL)

	_, err := c.postForm(ctx, form)
	return err
}

// FileURL reads back the raw value currently stored at
// (recordID, fieldName).
func (c *SheetClient) FileURL(ctx context.Context, recordID, fieldName string) (string, error) {
	form := url.Values{}
	form.Set("type", "verifyFile")
	form.Set("id", recordID)
	form.Set("fieldName", fieldName)

	return c.postForm(ctx, form)
}

func (c *SheetClient) postForm(ctx context.Context, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build record store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("record store request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read record store response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("record store returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return string(body), nil
}
