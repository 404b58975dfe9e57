package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a shared-gallery upload. UploadedBy is free text and not
// tied to a guest row. StoragePath is an opaque reference into the
// photos bucket; the row is the source of truth for the photo's
// existence even if the object lingers after a failed delete.
type Photo struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UploadedBy  string    `db:"uploaded_by" json:"uploaded_by"`
	Caption     string    `db:"caption" json:"caption,omitempty"`
	StoragePath string    `db:"storage_path" json:"storage_path"`
	Width       int       `db:"width" json:"width"`
	Height      int       `db:"height" json:"height"`
	URL         string    `db:"-" json:"url,omitempty"`
}
