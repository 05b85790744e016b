package exifmeta

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/ports"
)

var registerOnce sync.Once

// Reader extracts capture time and camera from EXIF data.
type Reader struct{}

func NewReader() *Reader {
	registerOnce.Do(func() { exif.RegisterParsers(mknote.All...) })
	return &Reader{}
}

var _ ports.MetadataReader = (*Reader)(nil)

func (r *Reader) ReadMetadata(path string) (domain.PhotoMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.PhotoMetadata{}, &domain.OpError{Op: "exifmeta.open", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return domain.PhotoMetadata{}, &domain.OpError{
			Op:   "exifmeta.decode",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("no exif data: %v: %w", err, domain.ErrNotFound),
		}
	}

	var m domain.PhotoMetadata
	if t, err := x.DateTime(); err == nil {
		m.TakenAt = t
	}
	m.CameraMake = stringTag(x, exif.Make)
	m.CameraModel = stringTag(x, exif.Model)
	return m, nil
}

func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
