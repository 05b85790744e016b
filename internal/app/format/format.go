// Package format renders photo fields for display in the TUI and CLI.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jehiah/go-strftime"

	"github.com/angie11-11/PhotoApp/internal/domain"
)

const DefaultDateLayout = "%Y-%m-%d %H:%M:%S"

// Formatter renders dates with a strftime layout.
type Formatter struct {
	layout string
}

func New(layout string) Formatter {
	if strings.TrimSpace(layout) == "" {
		layout = DefaultDateLayout
	}
	return Formatter{layout: layout}
}

func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return strftime.Format(f.layout, t)
}

// Size renders bytes in SI units, e.g. "2.0 MB".
func Size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// Summary is the one-line description used in lists: "<date> · <size>".
func (f Formatter) Summary(p domain.Photo) string {
	return fmt.Sprintf("%s · %s", f.Date(p.AddedAt), Size(p.SizeBytes))
}

// Camera joins make and model, dropping a make repeated in the model.
func Camera(m domain.PhotoMetadata) string {
	mk := strings.TrimSpace(m.CameraMake)
	md := strings.TrimSpace(m.CameraModel)
	switch {
	case mk == "":
		return md
	case md == "":
		return mk
	case strings.HasPrefix(strings.ToLower(md), strings.ToLower(mk)):
		return md
	default:
		return mk + " " + md
	}
}
