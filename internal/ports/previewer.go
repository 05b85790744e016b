package ports

import "context"

// Previewer renders an image as terminal text of at most width x height cells.
type Previewer interface {
	Preview(ctx context.Context, path string, width, height int) (string, error)
}
