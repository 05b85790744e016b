package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/ports"
)

// ManageAlbum owns an album and the cursor over it. The cursor is rebuilt
// whenever the album version moves, so any reader, including a subscriber
// running inside the mutating call, sees a cursor over the new contents.
type ManageAlbum struct {
	album         *domain.Album
	cursor        *domain.Cursor
	cursorVersion uint64
	inspector     ports.PhotoInspector

	now func() time.Time
	log *slog.Logger
}

type ManageOption func(*ManageAlbum)

// WithClock is useful for tests.
func WithClock(now func() time.Time) ManageOption {
	return func(uc *ManageAlbum) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(log *slog.Logger) ManageOption {
	return func(uc *ManageAlbum) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewManageAlbum(album *domain.Album, inspector ports.PhotoInspector, opts ...ManageOption) *ManageAlbum {
	if album == nil {
		album = domain.NewAlbum()
	}

	uc := &ManageAlbum{
		album:     album,
		inspector: inspector,
		now:       time.Now,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.resetCursor()
	return uc
}

func (uc *ManageAlbum) resetCursor() {
	uc.cursor = uc.album.Cursor()
	uc.cursorVersion = uc.album.Version()
}

func (uc *ManageAlbum) cur() *domain.Cursor {
	if uc.cursorVersion != uc.album.Version() {
		uc.resetCursor()
	}
	return uc.cursor
}

// AddPhoto validates the file at path and appends it to the album under name.
func (uc *ManageAlbum) AddPhoto(ctx context.Context, name, path string) (domain.Photo, error) {
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if name == "" || path == "" {
		return domain.Photo{}, &domain.OpError{
			Op:   "album.add",
			Kind: domain.KindInvalidPhoto,
			Path: path,
			Err:  fmt.Errorf("photo name and file path cannot be empty: %w", domain.ErrInvalidPhoto),
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.Photo{}, err
	}

	file, err := uc.inspector.Inspect(ctx, path)
	if err != nil {
		uc.log.Warn("photo.rejected", "name", name, "path", path, "err", err)
		return domain.Photo{}, err
	}

	photo, err := domain.NewPhotoAt(name, file.Path, file.SizeBytes, uc.now())
	if err != nil {
		return domain.Photo{}, err
	}

	uc.album.Add(photo)
	uc.log.Info("photo.added", "name", photo.Name, "path", photo.Path, "size_bytes", photo.SizeBytes, "count", uc.album.Count())
	return photo, nil
}

// ImportPaths adds every path, naming each photo after its file name.
// Rejected paths are reported in errs; accepted photos are returned in order.
func (uc *ManageAlbum) ImportPaths(ctx context.Context, paths []string) (added []domain.Photo, errs []error) {
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			return added, errs
		}

		photo, err := uc.AddPhoto(ctx, NameFromPath(p), p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}
		added = append(added, photo)
	}
	return added, errs
}

func (uc *ManageAlbum) DeletePhoto(photo domain.Photo) error {
	if err := uc.album.Remove(photo); err != nil {
		return err
	}
	uc.log.Info("photo.deleted", "name", photo.Name, "path", photo.Path, "count", uc.album.Count())
	return nil
}

func (uc *ManageAlbum) SortBy(c domain.SortCriterion) error {
	if err := uc.album.SortBy(c); err != nil {
		return err
	}
	uc.log.Info("album.sorted", "criterion", string(c), "count", uc.album.Count())
	return nil
}

func (uc *ManageAlbum) Next() (domain.Photo, error)     { return uc.cur().Next() }
func (uc *ManageAlbum) Previous() (domain.Photo, error) { return uc.cur().Previous() }
func (uc *ManageAlbum) Current() (domain.Photo, error)  { return uc.cur().Current() }
func (uc *ManageAlbum) HasNext() bool                   { return uc.cur().HasNext() }
func (uc *ManageAlbum) HasPrevious() bool               { return uc.cur().HasPrevious() }

// SeekTo restarts the cursor and advances it until p is current, so the next
// Next continues after p.
func (uc *ManageAlbum) SeekTo(p domain.Photo) error {
	uc.resetCursor()
	for uc.cursor.HasNext() {
		got, _ := uc.cursor.Next()
		if got.Equal(p) {
			return nil
		}
	}
	uc.resetCursor()
	return &domain.OpError{
		Op:   "album.seek",
		Kind: domain.KindNotFound,
		Path: p.Path,
		Err:  fmt.Errorf("%q: %w", p.Name, domain.ErrPhotoNotFound),
	}
}

func (uc *ManageAlbum) Photos() []domain.Photo { return uc.album.Photos() }
func (uc *ManageAlbum) Count() int             { return uc.album.Count() }

// First returns the photo shown after the album changes.
func (uc *ManageAlbum) First() (domain.Photo, bool) {
	p, err := uc.album.At(0)
	if err != nil {
		return domain.Photo{}, false
	}
	return p, true
}

// Subscribe forwards to the album so presentation code can re-render on change.
func (uc *ManageAlbum) Subscribe(fn func()) domain.Subscription {
	return uc.album.Subscribe(fn)
}

// NameFromPath derives a display name from a file path: base name without extension.
func NameFromPath(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return base
	}
	return name
}
