package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/shared"
)

const processPath = "/process"

// Multipart part names the processing endpoint expects.
const (
	htmlPartName  = "html_file"
	excelPartName = "excel_file"
)

// ProcessResult is the binary payload returned by a successful processing call.
type ProcessResult struct {
	Data        []byte
	ContentType string
}

// ProcessFiles uploads the selected report and names spreadsheet to the
// processing endpoint and returns the transformed report.
//
// The response body is treated as an opaque binary payload. A 401 maps to
// [shared.ErrSessionExpired] so callers can demote the session; every other
// failure maps to [shared.ErrProcessFailed].
func (c *Client) ProcessFiles(ctx context.Context, sel models.FileSelection) (*ProcessResult, error) {
	if !sel.Complete() {
		return nil, shared.ErrMissingFile
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	parts := []struct {
		field string
		name  string
		data  []byte
	}{
		{htmlPartName, filepath.Base(sel.HTMLPath), sel.HTMLData},
		{excelPartName, filepath.Base(sel.ExcelPath), sel.ExcelData},
	}
	for _, p := range parts {
		fw, err := writer.CreateFormFile(p.field, p.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create form part %s: %w", p.field, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return nil, fmt.Errorf("failed to write form part %s: %w", p.field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProcessFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, shared.ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrProcessFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProcessFailed, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/html"
	}

	return &ProcessResult{Data: data, ContentType: contentType}, nil
}
