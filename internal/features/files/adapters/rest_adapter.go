package adapters

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/features/files/domain"
)

const basePath = "/api/files"

// RESTAdapter implements ports.FileStorage against the backend file endpoints.
type RESTAdapter struct {
	client    *httpclient.RESTClient
	publicURL string
}

// NewRESTAdapter creates a file adapter. publicURL is the root file links are
// built from; empty means the client's base URL.
func NewRESTAdapter(client *httpclient.RESTClient, publicURL string) *RESTAdapter {
	if publicURL == "" {
		publicURL = client.BaseURL()
	}
	return &RESTAdapter{client: client, publicURL: strings.TrimRight(publicURL, "/")}
}

func filePath(id string) string {
	return basePath + "/" + url.PathEscape(id)
}

// Upload streams in as the multipart field "file". The body is never buffered
// whole; progress reports the bytes of in.Body handed to the transport.
func (a *RESTAdapter) Upload(ctx context.Context, in domain.Upload, progress domain.ProgressFunc) (*domain.UploadResult, error) {
	body := domain.NewProgressReader(in.Body, in.Size, progress)

	var out domain.UploadResult
	err := a.post(ctx, basePath+"/upload", func(mw *multipart.Writer) error {
		return writePart(mw, "file", in.Name, in.ContentType, body)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadMultiple streams every file as the repeated multipart field "files".
func (a *RESTAdapter) UploadMultiple(ctx context.Context, in []domain.Upload) ([]domain.UploadResult, error) {
	var out []domain.UploadResult
	err := a.post(ctx, basePath+"/upload/multiple", func(mw *multipart.Writer) error {
		for _, f := range in {
			if err := writePart(mw, "files", f.Name, f.ContentType, f.Body); err != nil {
				return err
			}
		}
		return nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// post pipes the multipart body produced by write into the request.
func (a *RESTAdapter) post(ctx context.Context, path string, write func(*multipart.Writer) error, out any) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := write(mw)
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	err := a.client.DoRaw(ctx, http.MethodPost, path, nil, mw.FormDataContentType(), pr, out)
	// Unblocks the writer if the request ended before the body was consumed.
	pr.Close()
	return err
}

func writePart(mw *multipart.Writer, field, name, contentType string, r io.Reader) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, escapeQuotes(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to stream %s: %w", name, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// Info fetches the stored file's metadata.
func (a *RESTAdapter) Info(ctx context.Context, id string) (*domain.Info, error) {
	var out domain.Info
	if err := a.client.Get(ctx, filePath(id)+"/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Exists asks the backend whether id is stored.
func (a *RESTAdapter) Exists(ctx context.Context, id string) (bool, error) {
	var out bool
	if err := a.client.Get(ctx, filePath(id)+"/exists", nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

// Delete removes a stored file.
func (a *RESTAdapter) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, filePath(id), nil)
}

// URL builds the public link of id.
func (a *RESTAdapter) URL(id string) string {
	return a.publicURL + filePath(id)
}
