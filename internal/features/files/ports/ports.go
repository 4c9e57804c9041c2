package ports

import (
	"context"

	"shop-admin/internal/features/files/domain"
)

// FileStorage is the backend port for uploaded images (driven port).
type FileStorage interface {
	// Upload streams one file; progress may be nil.
	Upload(ctx context.Context, in domain.Upload, progress domain.ProgressFunc) (*domain.UploadResult, error)
	UploadMultiple(ctx context.Context, in []domain.Upload) ([]domain.UploadResult, error)
	Info(ctx context.Context, id string) (*domain.Info, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	// URL builds the public link of a stored file.
	URL(id string) string
}

// FileService is the primary port used by the HTTP handler.
type FileService interface {
	Upload(ctx context.Context, in domain.Upload) (*domain.UploadResult, error)
	UploadMultiple(ctx context.Context, in []domain.Upload) ([]domain.UploadResult, error)
	Info(ctx context.Context, id string) (*domain.Info, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}
