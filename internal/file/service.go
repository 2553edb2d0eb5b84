package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dimaskresna/campus-booking-backend/internal/pkg/storage"
)

// UploadInput carries the raw multipart file plus the validation rules the
// calling endpoint wants applied.
type UploadInput struct {
	FileHeader   *multipart.FileHeader
	UserID       int64
	MaxSizeBytes int64
	AllowedTypes []string
	// NormalizeImage re-encodes the upload as a capped JPEG. Only set for
	// photo endpoints; proposal documents are stored as-is.
	NormalizeImage bool
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*File, error)
	Get(ctx context.Context, id string) (*File, error)
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string) (io.ReadCloser, *File, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*File, error) {
	if in.MaxSizeBytes > 0 && in.FileHeader.Size > in.MaxSizeBytes {
		return nil, ErrTooLarge
	}

	contentType := in.FileHeader.Header.Get("Content-Type")
	if len(in.AllowedTypes) > 0 && !typeAllowed(contentType, in.AllowedTypes) {
		return nil, ErrUnsupportedType
	}

	src, err := in.FileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffer the whole upload so it can be normalized, thumbnailed and
	// saved from the same bytes. Uploads are size-capped by the handlers.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read file content failed: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(in.FileHeader.Filename))
	isImage := strings.HasPrefix(contentType, "image/")

	if in.NormalizeImage {
		if !isImage {
			return nil, ErrUnsupportedType
		}
		normalized, err := s.imgProc.Normalize(bytes.NewReader(fileBytes), 1000)
		if err != nil {
			return nil, ErrUnsupportedType
		}
		fileBytes, err = io.ReadAll(normalized)
		if err != nil {
			return nil, fmt.Errorf("read normalized image failed: %w", err)
		}
		contentType = "image/jpeg"
		ext = ".jpg"
	}

	fileID := uuid.New().String()

	// Shard by UUID prefix to keep directories small: upload/ab/<uuid>.ext
	shard := fileID[:2]
	storagePath := fmt.Sprintf("upload/%s/%s%s", shard, fileID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("save file to storage failed: %w", err)
	}

	var thumbnailPath *string
	if isImage {
		thumb, err := s.imgProc.Thumbnail(bytes.NewReader(fileBytes), 200, 200)
		if err != nil {
			log.Printf("file %s: thumbnail generation failed: %v", fileID, err)
		} else {
			tPath := fmt.Sprintf("upload/%s/%s_thumb.jpg", shard, fileID)
			if err := s.storage.Save(ctx, tPath, thumb); err != nil {
				log.Printf("file %s: save thumbnail failed: %v", fileID, err)
			} else {
				thumbnailPath = &tPath
			}
		}
	}

	f := &File{
		ID:            fileID,
		UserID:        in.UserID,
		Filename:      in.FileHeader.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          int64(len(fileBytes)),
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return f, nil
}

func typeAllowed(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(contentType, t) {
			return true
		}
	}
	return false
}

func (s *service) Get(ctx context.Context, id string) (*File, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, f.StoragePath); err != nil {
		log.Printf("file %s: delete blob failed: %v", id, err)
	}
	if f.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *f.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, f.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve file from storage failed: %w", err)
	}
	return stream, f, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if f.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *f.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail from storage failed: %w", err)
	}
	return stream, f, nil
}
