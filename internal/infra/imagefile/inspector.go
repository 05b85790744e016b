package imagefile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/ports"
)

var errNotImage = errors.New("file does not exist or is not a valid image file")

// Inspector accepts existing regular files whose extension is in an allow-list.
type Inspector struct {
	exts map[string]struct{}
}

type Option func(*Inspector)

// WithExtensions replaces the accepted extensions (case-insensitive, dot optional).
func WithExtensions(exts []string) Option {
	return func(i *Inspector) {
		if len(exts) == 0 {
			return
		}
		i.exts = make(map[string]struct{}, len(exts))
		for _, e := range exts {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" {
				i.exts[e] = struct{}{}
			}
		}
	}
}

func NewInspector(opts ...Option) *Inspector {
	i := &Inspector{}
	WithExtensions(domain.DefaultConfig().Files.Extensions)(i)
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.PhotoInspector = (*Inspector)(nil)

func (i *Inspector) Inspect(ctx context.Context, path string) (domain.ImageFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.ImageFile{}, err
	}

	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.ImageFile{}, &domain.OpError{
			Op:   "imagefile.inspect",
			Kind: kind,
			Path: clean,
			Err:  fmt.Errorf("%w: %v", errNotImage, err),
		}
	}

	if !info.Mode().IsRegular() {
		return domain.ImageFile{}, invalid(clean, "not a regular file")
	}
	if !i.Accepts(clean) {
		return domain.ImageFile{}, invalid(clean, fmt.Sprintf("extension %q not accepted", filepath.Ext(clean)))
	}

	return domain.ImageFile{Path: clean, SizeBytes: info.Size()}, nil
}

// Accepts reports whether path has an accepted image extension.
func (i *Inspector) Accepts(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	_, ok := i.exts[ext]
	return ok
}

func invalid(path, reason string) error {
	return &domain.OpError{
		Op:   "imagefile.inspect",
		Kind: domain.KindInvalidPhoto,
		Path: path,
		Err:  fmt.Errorf("%w: %s: %w", errNotImage, reason, domain.ErrInvalidPhoto),
	}
}
