package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

// ProgressFunc reports multipart upload progress as bytes sent out of
// the total body size.
type ProgressFunc func(sent, total int64)

// Upload posts files and form fields as multipart/form-data. Files are
// already validated by the caller; this only moves bytes.
func (c *Caller) Upload(ctx context.Context, path string, files []types.UploadFile, fields map[string]string, onProgress ProgressFunc) (*types.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	total := int64(body.Len())
	var reader io.Reader = &body
	if onProgress != nil {
		reader = &progressReader{r: reader, total: total, report: onProgress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.ContentLength = total
	return c.send(req, "POST "+path)
}

// progressReader counts bytes as the transport drains the body.
type progressReader struct {
	r      io.Reader
	sent   int64
	total  int64
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.report(p.sent, p.total)
	}
	return n, err
}
