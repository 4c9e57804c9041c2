package domain

import (
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"shop-admin/internal/core/apperr"
)

// DefaultMaxBytes is the largest image accepted when no limit is configured.
const DefaultMaxBytes int64 = 5 << 20

// DefaultMaxFiles is the largest batch accepted when no limit is configured.
const DefaultMaxFiles = 10

// AllowedExtensions lists the accepted image extensions, lower-cased.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Upload is one file to send to the backend.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult is the backend's answer to an upload.
type UploadResult struct {
	Success bool   `json:"success"`
	FileID  string `json:"fileId"`
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

// Info describes a stored file.
type Info struct {
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
	// SizeLabel is filled by the service for display.
	SizeLabel string `json:"sizeLabel,omitempty"`
}

// Validate checks an image against the upload rules in order: content type,
// size, extension. limit <= 0 means DefaultMaxBytes.
func Validate(name, contentType string, size, limit int64) error {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return apperr.Invalid("file", "Chỉ được phép upload file ảnh")
	}
	if size > limit {
		return apperr.Invalid("file", "File quá lớn. Kích thước tối đa là "+FormatFileSize(limit))
	}

	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return apperr.Invalid("file", "Định dạng file không được hỗ trợ. Chỉ chấp nhận: "+strings.Join(AllowedExtensions, ", "))
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes with 1024-based units and at most two decimals,
// e.g. "0 Bytes", "1.5 KB", "5 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}

	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
