package service

import (
	"context"
	"errors"
	"fmt"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/features/files/domain"
	"shop-admin/internal/features/files/ports"

	"go.uber.org/zap"
)

// FileService validates images before handing them to the backend storage.
type FileService struct {
	storage  ports.FileStorage
	maxBytes int64
	maxFiles int
	log      *zap.Logger
}

// NewFileService creates a new FileService. Limits <= 0 fall back to
// domain.DefaultMaxBytes and domain.DefaultMaxFiles.
func NewFileService(storage ports.FileStorage, maxBytes int64, maxFiles int) *FileService {
	if maxBytes <= 0 {
		maxBytes = domain.DefaultMaxBytes
	}
	if maxFiles <= 0 {
		maxFiles = domain.DefaultMaxFiles
	}
	return &FileService{
		storage:  storage,
		maxBytes: maxBytes,
		maxFiles: maxFiles,
		log:      logger.Named("files"),
	}
}

// Upload validates in and streams it to the backend. A refusal reported in the
// answer body is a backend failure like any transport error.
func (s *FileService) Upload(ctx context.Context, in domain.Upload) (*domain.UploadResult, error) {
	if err := domain.Validate(in.Name, in.ContentType, in.Size, s.maxBytes); err != nil {
		return nil, err
	}

	res, err := s.storage.Upload(ctx, in, s.progress(in.Name))
	if err != nil {
		return nil, apperr.Backend("upload file", err)
	}
	if err := refused(res); err != nil {
		return nil, apperr.Backend("upload file", err)
	}

	s.withURL(res)
	s.log.Info("File uploaded",
		zap.String("file_id", res.FileID),
		zap.String("name", in.Name),
		zap.String("size", domain.FormatFileSize(in.Size)),
	)
	return res, nil
}

// UploadMultiple validates every file before sending any of them.
func (s *FileService) UploadMultiple(ctx context.Context, in []domain.Upload) ([]domain.UploadResult, error) {
	if len(in) == 0 {
		return nil, apperr.Invalid("files", "at least one file is required")
	}
	if len(in) > s.maxFiles {
		return nil, apperr.Invalid("files", fmt.Sprintf("Chỉ được upload tối đa %d file", s.maxFiles))
	}
	for _, f := range in {
		if err := domain.Validate(f.Name, f.ContentType, f.Size, s.maxBytes); err != nil {
			var ve *apperr.ValidationError
			if errors.As(err, &ve) {
				return nil, apperr.Invalid(f.Name, ve.Message)
			}
			return nil, err
		}
	}

	res, err := s.storage.UploadMultiple(ctx, in)
	if err != nil {
		return nil, apperr.Backend("upload files", err)
	}
	for i := range res {
		if res[i].Success {
			s.withURL(&res[i])
		}
	}
	s.log.Info("Files uploaded", zap.Int("count", len(res)))
	return res, nil
}

// Info fetches a stored file's metadata and fills its display fields.
func (s *FileService) Info(ctx context.Context, id string) (*domain.Info, error) {
	info, err := s.storage.Info(ctx, id)
	if err != nil {
		return nil, apperr.Backend("load file info", err)
	}
	if info.FileID == "" {
		info.FileID = id
	}
	if info.URL == "" {
		info.URL = s.storage.URL(info.FileID)
	}
	info.SizeLabel = domain.FormatFileSize(info.Size)
	return info, nil
}

// Exists reports whether the backend stores id.
func (s *FileService) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.storage.Exists(ctx, id)
	if err != nil {
		return false, apperr.Backend("check file", err)
	}
	return ok, nil
}

// Delete removes a stored file.
func (s *FileService) Delete(ctx context.Context, id string) error {
	if err := s.storage.Delete(ctx, id); err != nil {
		return apperr.Backend("delete file", err)
	}
	s.log.Info("File deleted", zap.String("file_id", id))
	return nil
}

func (s *FileService) withURL(res *domain.UploadResult) {
	if res.URL == "" && res.FileID != "" {
		res.URL = s.storage.URL(res.FileID)
	}
}

// progress logs each quarter of an upload once.
func (s *FileService) progress(name string) domain.ProgressFunc {
	reported := 0
	return func(sent, total int64) {
		pct := domain.Percent(sent, total)
		if pct/25 <= reported/25 {
			return
		}
		reported = pct
		s.log.Debug("Upload progress", zap.String("name", name), zap.Int("percent", pct))
	}
}

func refused(res *domain.UploadResult) error {
	if res.Success {
		return nil
	}
	if res.Message != "" {
		return errors.New(res.Message)
	}
	return errors.New("upload failed")
}
