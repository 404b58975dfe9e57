package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/helpers"
	"github.com/nataliejames/wedding-api/internal/models"
)

const PhotosPerPage = 24

var ErrUploaderNameRequired = errors.New("please tell us who is uploading the photo")

type PhotoService struct {
	photoRepo models.PhotoRepo
	logger    *slog.Logger
}

func NewPhotoService(photoRepo models.PhotoRepo, logger *slog.Logger) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		logger:    logger,
	}
}

// UploadPhoto recompresses the image (longest edge bounded, JPEG
// re-encode), uploads the bytes to the photos bucket, and then
// records the metadata row with the resized dimensions.
func (ps *PhotoService) UploadPhoto(ctx context.Context, r io.Reader, uploadedBy, caption string) (*models.Photo, error) {
	uploadedBy = strings.TrimSpace(uploadedBy)
	if uploadedBy == "" {
		return nil, ErrUploaderNameRequired
	}

	normalized, err := helpers.NormalizeImage(r, helpers.PhotoMaxEdge, helpers.PhotoJPEGQuality)
	if err != nil {
		return nil, err
	}

	objectName := helpers.PhotoObjectName()
	if err := ps.photoRepo.UploadObject(ctx, objectName, normalized.Data, "image/jpeg"); err != nil {
		return nil, err
	}

	photo, err := ps.photoRepo.InsertPhoto(ctx, &models.Photo{
		UploadedBy:  uploadedBy,
		Caption:     strings.TrimSpace(caption),
		StoragePath: objectName,
		Width:       normalized.Width,
		Height:      normalized.Height,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	photo.URL = ps.photoRepo.PublicURL(photo.StoragePath)
	return photo, nil
}

// ListPhotos returns one fixed-size page with public URLs attached,
// plus the total photo count so the caller knows whether more pages
// remain.
func (ps *PhotoService) ListPhotos(ctx context.Context, page int, sort string) ([]*models.Photo, int, error) {
	if page < 1 {
		return nil, 0, fmt.Errorf("invalid page parameter")
	}
	newestFirst := sort != "oldest"
	offset := (page - 1) * PhotosPerPage

	photos, total, err := ps.photoRepo.ListPhotos(ctx, offset, PhotosPerPage, newestFirst)
	if err != nil {
		return nil, 0, err
	}
	for _, p := range photos {
		p.URL = ps.photoRepo.PublicURL(p.StoragePath)
	}
	return photos, total, nil
}

// DeletePhoto removes the metadata row first and then makes a
// best-effort attempt at the storage object. The row is the source of
// truth: a lingering object after a failed storage delete is logged
// and tolerated, never surfaced as a failure.
func (ps *PhotoService) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	photo, err := ps.photoRepo.GetPhotoByID(ctx, id)
	if err != nil {
		return err
	}

	if err := ps.photoRepo.DeletePhotoRow(ctx, id); err != nil {
		return err
	}

	if err := ps.photoRepo.RemoveObject(ctx, photo.StoragePath); err != nil {
		ps.logger.Warn("Storage object delete failed after row delete",
			"photo_id", id,
			"storage_path", photo.StoragePath,
			"error", err,
		)
	}
	return nil
}

// DownloadPhoto fetches the stored bytes and suggests a filename for
// a browser-local save.
func (ps *PhotoService) DownloadPhoto(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	photo, err := ps.photoRepo.GetPhotoByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := ps.photoRepo.DownloadObject(ctx, photo.StoragePath)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("natalie-james-wedding-%s.jpg", photo.ID), nil
}
