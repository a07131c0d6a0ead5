package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/shenikar/fleet_incident_tracker/internal/storage"
	"golang.org/x/sync/errgroup"
)

// uploadAttachments загружает файлы параллельно и возвращает URL по полям images/documents.
// Порядок URL совпадает с порядком файлов; ошибка любой загрузки отменяет весь запрос.
func (s *incidentService) uploadAttachments(ctx context.Context, uploads []models.Upload) (map[string][]string, error) {
	result := make(map[string][]string)
	if len(uploads) == 0 {
		return result, nil
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: file uploads are not configured", models.ErrUpstream)
	}

	if s.cfg != nil && s.cfg.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.UploadTimeout)
		defer cancel()
	}

	// Поля и размеры проверяются до запуска загрузок
	folders := make([]string, len(uploads))
	for i, upload := range uploads {
		folder, err := uploadFolder(upload.Field)
		if err != nil {
			return nil, err
		}
		folders[i] = folder

		if s.cfg != nil && s.cfg.UploadMaxBytes > 0 && upload.Size > s.cfg.UploadMaxBytes {
			return nil, fmt.Errorf("%w: file %q exceeds %d bytes", models.ErrValidation, upload.Filename, s.cfg.UploadMaxBytes)
		}
	}

	urls := make([]string, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	for i, upload := range uploads {
		folder := folders[i]
		g.Go(func() error {
			f, err := upload.Open()
			if err != nil {
				return fmt.Errorf("could not open upload %q: %w", upload.Filename, err)
			}
			defer f.Close()

			url, err := s.uploader.Upload(gctx, f, upload.Filename, folder)
			if err != nil {
				return fmt.Errorf("could not upload %q: %w", upload.Filename, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, upload := range uploads {
		result[upload.Field] = append(result[upload.Field], urls[i])
	}
	return result, nil
}

func uploadFolder(field string) (string, error) {
	switch field {
	case models.AttachmentImages:
		return storage.FolderImages, nil
	case models.AttachmentDocuments:
		return storage.FolderDocuments, nil
	}
	return "", fmt.Errorf("%w: unexpected upload field %q", models.ErrValidation, field)
}
