package ports

import "github.com/angie11-11/PhotoApp/internal/domain"

// MetadataReader reads embedded image metadata (e.g., EXIF).
type MetadataReader interface {
	ReadMetadata(path string) (domain.PhotoMetadata, error)
}
