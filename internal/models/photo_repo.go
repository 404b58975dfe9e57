package models

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
)

var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepo covers both the photos table and the backing storage
// bucket; the two are one concern because every row references an
// object and deletion spans both.
type PhotoRepo interface {
	InsertPhoto(ctx context.Context, photo *Photo) (*Photo, error)
	ListPhotos(ctx context.Context, offset, limit int, newestFirst bool) ([]*Photo, int, error)
	GetPhotoByID(ctx context.Context, id uuid.UUID) (*Photo, error)
	DeletePhotoRow(ctx context.Context, id uuid.UUID) error

	UploadObject(ctx context.Context, path string, data []byte, contentType string) error
	RemoveObject(ctx context.Context, path string) error
	DownloadObject(ctx context.Context, path string) ([]byte, error)
	PublicURL(path string) string
}

func (su *SupabaseRepo) InsertPhoto(ctx context.Context, photo *Photo) (*Photo, error) {
	photoData := map[string]interface{}{
		"uploaded_by":  photo.UploadedBy,
		"storage_path": photo.StoragePath,
		"width":        photo.Width,
		"height":       photo.Height,
		"created_at":   photo.CreatedAt.Format(time.RFC3339),
	}
	if photo.Caption != "" {
		photoData["caption"] = photo.Caption
	}

	raw, count, err := su.supabaseClient.From(PhotosTable).
		Insert(photoData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert photo row: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no photo data returned after insert")
	}

	var created []*Photo
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created photo: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no photo data returned after insert")
	}
	return created[0], nil
}

// ListPhotos returns one page of photos plus the exact total count so
// the caller can decide whether more pages remain.
func (su *SupabaseRepo) ListPhotos(ctx context.Context, offset, limit int, newestFirst bool) ([]*Photo, int, error) {
	raw, count, err := su.supabaseClient.From(PhotosTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: !newestFirst}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list photos: %v", err)
	}

	var photos []*Photo
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal photo rows: %v", err)
	}
	return photos, int(count), nil
}

func (su *SupabaseRepo) GetPhotoByID(ctx context.Context, id uuid.UUID) (*Photo, error) {
	raw, _, err := su.supabaseClient.From(PhotosTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %v", err)
	}

	var photos []*Photo
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photo row: %v", err)
	}
	if len(photos) == 0 {
		return nil, ErrPhotoNotFound
	}
	return photos[0], nil
}

func (su *SupabaseRepo) DeletePhotoRow(ctx context.Context, id uuid.UUID) error {
	_, count, err := su.supabaseClient.From(PhotosTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete photo row: %v", err)
	}
	if count == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (su *SupabaseRepo) UploadObject(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := su.supabaseClient.Storage.UploadFile(PhotosBucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %v", path, err)
	}
	return nil
}

func (su *SupabaseRepo) RemoveObject(ctx context.Context, path string) error {
	_, err := su.supabaseClient.Storage.RemoveFile(PhotosBucket, []string{path})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %v", path, err)
	}
	return nil
}

func (su *SupabaseRepo) DownloadObject(ctx context.Context, path string) ([]byte, error) {
	data, err := su.supabaseClient.Storage.DownloadFile(PhotosBucket, path)
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %v", path, err)
	}
	return data, nil
}

func (su *SupabaseRepo) PublicURL(path string) string {
	res := su.supabaseClient.Storage.GetPublicUrl(PhotosBucket, path)
	return res.SignedURL
}
