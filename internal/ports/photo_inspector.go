package ports

import (
	"context"

	"github.com/angie11-11/PhotoApp/internal/domain"
)

// PhotoInspector checks that a path names an image file the album can accept.
type PhotoInspector interface {
	Inspect(ctx context.Context, path string) (domain.ImageFile, error)
}
