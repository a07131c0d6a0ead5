package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

const defaultMultipartMemory = 32 << 20

// bindRequest заполняет obj из JSON или из формы (urlencoded/multipart).
// Для формы возвращает значения полей; пустые значения отбрасываются, чтобы не превращаться в нули.
func (h *Handler) bindRequest(c *gin.Context, obj any) (url.Values, error) {
	if c.ContentType() == binding.MIMEJSON {
		return nil, c.ShouldBindJSON(obj)
	}

	values, err := formValues(c, h.multipartMemory())
	if err != nil {
		return nil, err
	}
	if err := binding.MapFormWithTag(obj, values, "form"); err != nil {
		return nil, err
	}
	return values, nil
}

// multipartMemory - сколько байт формы держать в памяти, остальное уходит во временные файлы
func (h *Handler) multipartMemory() int64 {
	if h.cfg != nil && h.cfg.UploadMaxBytes > 0 {
		return h.cfg.UploadMaxBytes
	}
	return defaultMultipartMemory
}

func formValues(c *gin.Context, maxMemory int64) (url.Values, error) {
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
			return nil, err
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}

	values := url.Values{}
	for key, vs := range c.Request.PostForm {
		for _, v := range vs {
			if strings.TrimSpace(v) != "" {
				values.Add(key, v)
			}
		}
	}
	return values, nil
}

// attachmentURLs читает текстовые значения поля images/documents: JSON-массив или повторяющиеся URL
func attachmentURLs(values url.Values, field string) ([]string, error) {
	var urls []string
	for _, v := range values[field] {
		v = strings.TrimSpace(v)
		if strings.HasPrefix(v, "[") {
			var list []string
			if err := json.Unmarshal([]byte(v), &list); err != nil {
				return nil, fmt.Errorf("%w: field %s must be a JSON array of URLs", models.ErrValidation, field)
			}
			urls = append(urls, list...)
			continue
		}
		urls = append(urls, v)
	}
	return urls, nil
}

// fileUploads собирает файлы из полей images и documents в порядке следования
func fileUploads(c *gin.Context) []models.Upload {
	form := c.Request.MultipartForm
	if form == nil {
		return nil
	}

	var uploads []models.Upload
	for _, field := range []string{models.AttachmentImages, models.AttachmentDocuments} {
		for _, fh := range form.File[field] {
			uploads = append(uploads, models.Upload{
				Field:    field,
				Filename: fh.Filename,
				Size:     fh.Size,
				Open: func() (io.ReadCloser, error) {
					return fh.Open()
				},
			})
		}
	}
	return uploads
}
