package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

func pdf(name string, size int) types.UploadFile {
	return types.UploadFile{
		Name:    name,
		Size:    int64(size),
		Content: bytes.NewReader(bytes.Repeat([]byte("x"), size)),
	}
}

func TestUploadPDFs_TooManyFilesNeverSent(t *testing.T) {
	t.Parallel()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	files := make([]types.UploadFile, 6)
	for i := range files {
		files[i] = pdf("doc.pdf", 16)
	}
	_, err := UploadPDFs(context.Background(), c, files, nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if vErr.Result.Errors["files"] != "Maximum 5 files allowed" {
		t.Fatalf("files error = %q", vErr.Result.Errors["files"])
	}
	if hits != 0 {
		t.Fatal("zero files must be forwarded to the transport")
	}
}

func TestUploadPDFs_MultipartAndProgress(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("content type = %s", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		parts := r.MultipartForm.File["files"]
		if len(parts) != 2 {
			t.Errorf("got %d file parts, want 2", len(parts))
		}
		f, _ := parts[0].Open()
		body, _ := io.ReadAll(f)
		if len(body) != 64 {
			t.Errorf("first file %d bytes, want 64", len(body))
		}
		writeEnvelope(w, http.StatusCreated, types.UploadResponse{
			Documents: []types.PDFDocument{{ID: "d1"}, {ID: "d2"}}, Count: 2,
		})
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	var lastSent, total int64
	out, err := UploadPDFs(context.Background(), c,
		[]types.UploadFile{pdf("a.pdf", 64), pdf("b.pdf", 32)},
		func(sent, tot int64) { lastSent, total = sent, tot },
	)
	if err != nil || out.Count != 2 {
		t.Fatalf("UploadPDFs: out=%+v err=%v", out, err)
	}
	if lastSent == 0 || lastSent != total {
		t.Fatalf("progress incomplete: sent=%d total=%d", lastSent, total)
	}
}

func TestListAndDeletePDFs(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeEnvelope(w, http.StatusOK, types.ListPDFsResponse{
				Documents: []types.PDFDocument{{ID: "d1", FileName: "rites.pdf"}}, Count: 1,
			})
		case r.Method == http.MethodDelete:
			if r.URL.Path != "/puja/pdfs/d1" {
				t.Errorf("path = %s", r.URL.Path)
			}
			writeEnvelope(w, http.StatusOK, nil)
		}
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	out, err := ListPDFs(context.Background(), c)
	if err != nil || out.Count != 1 {
		t.Fatalf("ListPDFs: %+v %v", out, err)
	}
	if err := DeletePDF(context.Background(), c, "d1"); err != nil {
		t.Fatalf("DeletePDF: %v", err)
	}
}
