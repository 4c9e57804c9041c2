package domain

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"shop-admin/internal/core/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
		size        int64
		wantErr     string
	}{
		{"ValidPNG", "logo.png", "image/png", 1024, ""},
		{"UpperCaseExtension", "PHOTO.JPG", "image/jpeg", 2048, ""},
		{"ExactlyMax", "a.webp", "image/webp", DefaultMaxBytes, ""},
		{"NotImage", "doc.pdf", "application/pdf", 10, "Chỉ được phép upload file ảnh"},
		{"TooLarge", "big.png", "image/png", DefaultMaxBytes + 1, "Kích thước tối đa là 5 MB"},
		{"BadExtension", "vector.svg", "image/svg+xml", 10, "Định dạng file không được hỗ trợ"},
		{"NoExtension", "image", "image/png", 10, ".jpg, .jpeg, .png, .gif, .webp"},
		{"TypeCheckedFirst", "huge.pdf", "text/plain", DefaultMaxBytes * 2, "file ảnh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file, tt.contentType, tt.size, 0)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CustomMax(t *testing.T) {
	assert.Error(t, Validate("a.png", "image/png", 1025, 1024))
	assert.NoError(t, Validate("a.png", "image/png", 1024, 1024))
}

func TestFormatFileSize(t *testing.T) {
	tests := map[int64]string{
		0:       "0 Bytes",
		500:     "500 Bytes",
		1024:    "1 KB",
		1536:    "1.5 KB",
		1234567: "1.18 MB",
		5 << 20: "5 MB",
		3 << 30: "3 GB",
		2 << 40: "2048 GB",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatFileSize(in), "bytes=%d", in)
	}
}

func TestProgressReader(t *testing.T) {
	var reports [][2]int64
	r := NewProgressReader(strings.NewReader("hello world"), 11, func(sent, total int64) {
		reports = append(reports, [2]int64{sent, total})
	})

	var out bytes.Buffer
	_, err := io.CopyBuffer(&out, struct{ io.Reader }{r}, make([]byte, 4))
	require.NoError(t, err)

	assert.Equal(t, "hello world", out.String())
	assert.Equal(t, int64(11), r.Sent())
	require.NotEmpty(t, reports)
	assert.Equal(t, [2]int64{11, 11}, reports[len(reports)-1])
	assert.Equal(t, [2]int64{4, 11}, reports[0])
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(10, 0))
	assert.Equal(t, 50, Percent(5, 10))
	assert.Equal(t, 100, Percent(12, 10))
}
