package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/ports"
)

const halfBlock = "▀"

// Renderer draws images with upper-half blocks: each cell shows two pixel rows,
// the top one as foreground and the bottom one as background.
type Renderer struct {
	mu    sync.Mutex
	cache map[cacheKey]string
}

type cacheKey struct {
	path          string
	width, height int
	modUnix       int64
}

func NewRenderer() *Renderer {
	return &Renderer{cache: make(map[cacheKey]string)}
}

var _ ports.Previewer = (*Renderer)(nil)

func (r *Renderer) Preview(ctx context.Context, path string, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &domain.OpError{Op: "preview.stat", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	key := cacheKey{path: path, width: width, height: height, modUnix: info.ModTime().UnixNano()}

	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := decode(path)
	if err != nil {
		return "", err
	}

	thumb := resize.Thumbnail(uint(width), uint(height*2), img, resize.Lanczos3)
	out := Render(thumb)

	r.mu.Lock()
	r.cache[key] = out
	r.mu.Unlock()
	return out, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{Op: "preview.open", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "preview.decode",
			Kind: domain.KindInvalidPhoto,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidPhoto),
		}
	}
	return img, nil
}

// Render converts img to lines of half-block cells. An odd last row is drawn
// against the terminal background.
func Render(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hex(img.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hex(img.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
