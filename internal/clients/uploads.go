package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

// Media uploads go out as multipart bodies under fixed field names. The
// backend stores the file and answers with its public URL.

func (c *Client) UploadImage(ctx context.Context, token, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, "/uploads/image", "image", token, filename, file)
}

func (c *Client) UploadAudio(ctx context.Context, token, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, "/uploads/audio", "audio", token, filename, file)
}

func (c *Client) UploadVideo(ctx context.Context, token, filename string, file io.Reader) (string, error) {
	return c.upload(ctx, "/admin/uploads/video", "video", token, filename, file)
}

func (c *Client) upload(ctx context.Context, path, field, token, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read staged file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result struct {
		URL string `json:"url"`
	}
	if err := c.send(req, token, &result); err != nil {
		return "", err
	}

	c.logger.Info("Uploaded media file",
		zap.String("field", field),
		zap.String("filename", filename),
		zap.String("url", result.URL))
	return result.URL, nil
}
