package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deskhive/interview-booking-backend/internal/pkg/apperror"
	"github.com/deskhive/interview-booking-backend/internal/pkg/storage"
)

const (
	maxUploadBytes = 10 << 20 // 10 MiB
	thumbMaxWidth  = 400
	thumbMaxHeight = 300
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadRequest carries one image upload for a room.
type UploadRequest struct {
	RoomID      string
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*Photo, error)
	GetByID(ctx context.Context, id string) (*Photo, error)
	ListByRoom(ctx context.Context, roomID string) ([]*Photo, error)
	// Open returns the stored original image content.
	Open(ctx context.Context, p *Photo) (io.ReadCloser, error)
	// OpenThumbnail returns the stored thumbnail content.
	OpenThumbnail(ctx context.Context, p *Photo) (io.ReadCloser, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	store     storage.Storage
	processor *storage.ImageProcessor
	logger    zerolog.Logger
}

func NewService(repo Repository, store storage.Storage, processor *storage.ImageProcessor, logger zerolog.Logger) Service {
	return &service{
		repo:      repo,
		store:     store,
		processor: processor,
		logger:    logger.With().Str("component", "photo").Logger(),
	}
}

// Upload stores the original image and a generated thumbnail, then records
// both. The thumbnail is produced before anything is written so a bad image
// leaves no orphaned files.
func (s *service) Upload(ctx context.Context, req UploadRequest) (*Photo, error) {
	ext, ok := allowedTypes[req.ContentType]
	if !ok {
		return nil, ErrUnsupportedType
	}
	if req.SizeBytes > maxUploadBytes {
		return nil, ErrTooLarge
	}

	content, err := io.ReadAll(io.LimitReader(req.Content, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload failed: %w", err)
	}
	if len(content) > maxUploadBytes {
		return nil, ErrTooLarge
	}

	thumb, err := s.processor.GenerateThumbnail(bytes.NewReader(content), thumbMaxWidth, thumbMaxHeight)
	if err != nil {
		return nil, ErrUnsupportedType
	}

	id := uuid.NewString()
	p := &Photo{
		RoomID:      req.RoomID,
		FileName:    filepath.Base(req.FileName),
		ContentType: req.ContentType,
		SizeBytes:   int64(len(content)),
		Path:        fmt.Sprintf("rooms/%s/%s%s", req.RoomID, id, ext),
		ThumbPath:   fmt.Sprintf("rooms/%s/%s_thumb.jpg", req.RoomID, id),
	}

	if err := s.store.Save(ctx, p.Path, bytes.NewReader(content)); err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "failed to store photo")
	}
	if err := s.store.Save(ctx, p.ThumbPath, thumb); err != nil {
		s.cleanup(ctx, p.Path)
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "failed to store photo")
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.cleanup(ctx, p.Path, p.ThumbPath)
		return nil, err
	}

	s.logger.Info().Str("photo_id", p.ID).Str("room_id", p.RoomID).Msg("photo uploaded")
	return p, nil
}

func (s *service) cleanup(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if err := s.store.Delete(ctx, path); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("orphan cleanup failed")
		}
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Photo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByRoom(ctx context.Context, roomID string) ([]*Photo, error) {
	return s.repo.ListByRoom(ctx, roomID)
}

func (s *service) Open(ctx context.Context, p *Photo) (io.ReadCloser, error) {
	return s.store.Get(ctx, p.Path)
}

func (s *service) OpenThumbnail(ctx context.Context, p *Photo) (io.ReadCloser, error) {
	return s.store.Get(ctx, p.ThumbPath)
}

// Delete removes the record first, then the files. A file that fails to
// delete is logged and left behind; the record is gone either way.
func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cleanup(ctx, p.Path, p.ThumbPath)
	return nil
}
