package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

// UploadPDFs validates and uploads reference documents. No bytes are
// sent when validation fails.
func UploadPDFs(ctx context.Context, c *Caller, files []types.UploadFile, onProgress ProgressFunc) (*types.UploadResponse, error) {
	if r := types.ValidatePDFUpload(files); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	env, err := c.Upload(ctx, "/puja/pdfs", files, nil, onProgress)
	if err != nil {
		return nil, err
	}
	var out types.UploadResponse
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPDFs retrieves the uploaded documents.
func ListPDFs(ctx context.Context, c *Caller) (*types.ListPDFsResponse, error) {
	env, err := c.DoJSON(ctx, http.MethodGet, "/puja/pdfs", nil)
	if err != nil {
		return nil, err
	}
	var out types.ListPDFsResponse
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePDF removes an uploaded document by ID.
func DeletePDF(ctx context.Context, c *Caller, id string) error {
	_, err := c.DoJSON(ctx, http.MethodDelete, "/puja/pdfs/"+url.PathEscape(id), nil)
	return err
}
