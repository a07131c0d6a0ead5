package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

const (
	FolderImages    = "incidents/images"
	FolderDocuments = "incidents/documents"
)

// Uploader - внешнее хранилище файлов: принимает содержимое, возвращает постоянный URL
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error)
}

// LocalUploader сохраняет файлы на диск, раздача идет статическим маршрутом по baseURL
type LocalUploader struct {
	root     string
	baseURL  string
	maxBytes int64
}

// NewLocalUploader создает LocalUploader
func NewLocalUploader(root, baseURL string, maxBytes int64) *LocalUploader {
	return &LocalUploader{
		root:     root,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}
}

// Upload записывает файл под случайным именем и возвращает его URL
func (u *LocalUploader) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	folder = path.Clean("/" + folder)[1:]
	if folder == "" {
		return "", fmt.Errorf("%w: upload folder is required", models.ErrValidation)
	}

	dir := filepath.Join(u.root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w: %w", models.ErrUpstream, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w: %w", models.ErrUpstream, err)
	}
	defer os.Remove(tmp.Name()) // после успешного Rename ничего не удалит

	src := r
	if u.maxBytes > 0 {
		src = io.LimitReader(r, u.maxBytes+1)
	}
	written, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: src})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("failed to write upload %q: %w: %w", filename, models.ErrUpstream, err)
	}
	if u.maxBytes > 0 && written > u.maxBytes {
		return "", fmt.Errorf("%w: file %q exceeds %d bytes", models.ErrValidation, filename, u.maxBytes)
	}

	name := uuid.NewString() + safeExt(filename)
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to store upload %q: %w: %w", filename, models.ErrUpstream, err)
	}

	return u.baseURL + "/" + path.Join(folder, name), nil
}

// safeExt оставляет только короткое буквенно-цифровое расширение
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// ctxReader прерывает копирование при отмене контекста
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
