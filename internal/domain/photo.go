package domain

import (
	"fmt"
	"strings"
	"time"
)

// Photo is an immutable record of an image added to the album.
// Two photos are the same photo when all four fields match (see Equal).
type Photo struct {
	Name      string
	Path      string
	AddedAt   time.Time
	SizeBytes int64
}

// NewPhoto builds a Photo stamped with the current time.
func NewPhoto(name, path string, sizeBytes int64) (Photo, error) {
	return NewPhotoAt(name, path, sizeBytes, time.Now())
}

// NewPhotoAt builds a Photo with an explicit AddedAt.
func NewPhotoAt(name, path string, sizeBytes int64, addedAt time.Time) (Photo, error) {
	if strings.TrimSpace(name) == "" {
		return Photo{}, &OpError{
			Op:   "photo.new",
			Kind: KindInvalidPhoto,
			Path: path,
			Err:  fmt.Errorf("name is required: %w", ErrInvalidPhoto),
		}
	}
	if sizeBytes < 0 {
		return Photo{}, &OpError{
			Op:   "photo.new",
			Kind: KindInvalidPhoto,
			Path: path,
			Err:  fmt.Errorf("negative size %d: %w", sizeBytes, ErrInvalidPhoto),
		}
	}

	return Photo{
		Name:      name,
		Path:      path,
		AddedAt:   addedAt,
		SizeBytes: sizeBytes,
	}, nil
}

// Equal reports structural equality over all fields.
func (p Photo) Equal(o Photo) bool {
	return p.Name == o.Name &&
		p.Path == o.Path &&
		p.SizeBytes == o.SizeBytes &&
		p.AddedAt.Equal(o.AddedAt)
}

func (p Photo) String() string {
	return fmt.Sprintf("%s - %s (%d bytes)", p.Name, p.AddedAt.Format(time.RFC1123), p.SizeBytes)
}

// ImageFile is what an inspector reports about a candidate file.
type ImageFile struct {
	Path      string
	SizeBytes int64
}

// PhotoMetadata is optional embedded information about an image (EXIF).
type PhotoMetadata struct {
	TakenAt     time.Time
	CameraMake  string
	CameraModel string
}

// IsZero reports whether no metadata was found.
func (m PhotoMetadata) IsZero() bool {
	return m.TakenAt.IsZero() && m.CameraMake == "" && m.CameraModel == ""
}
