package helpers

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/disintegration/imaging"
)

const (
	// Uploads are bounded to this edge length and re-encoded as JPEG so
	// storage cost stays predictable regardless of source device.
	PhotoMaxEdge     = 2048
	PhotoJPEGQuality = 95
)

// NormalizedImage holds the recompressed upload bytes plus the
// dimensions actually recorded in the photos table.
type NormalizedImage struct {
	Data   []byte
	Width  int
	Height int
}

// NormalizeImage decodes any supported image, scales it down so the
// longest edge is at most maxEdge (aspect ratio preserved, never
// upscaled), and re-encodes it as JPEG.
func NormalizeImage(r io.Reader, maxEdge, quality int) (*NormalizedImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxEdge || bounds.Dy() > maxEdge {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %v", err)
	}

	return &NormalizedImage{
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// PhotoObjectName builds a unique storage filename. The extension is
// always .jpg because every upload is recompressed to JPEG first.
func PhotoObjectName() string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
