package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/angie11-11/PhotoApp/internal/app/format"
	"github.com/angie11-11/PhotoApp/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderPhotoDetails lists the fields of p and whatever metadata was found.
// maxWidth bounds the value column; zero or less leaves values untouched.
func renderPhotoDetails(p domain.Photo, meta domain.PhotoMetadata, f format.Formatter, maxWidth int) string {
	clamp := func(s string) string {
		if maxWidth <= 0 {
			return s
		}
		return clampString(s, maxWidth)
	}

	var b strings.Builder
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(clamp(value))
		b.WriteString("\n")
	}

	field("Name", p.Name)
	field("Path", p.Path)
	field("Added", f.Date(p.AddedAt))
	field("Size", format.Size(p.SizeBytes))

	if !meta.IsZero() {
		if !meta.TakenAt.IsZero() {
			field("Taken", f.Date(meta.TakenAt))
		}
		field("Camera", format.Camera(meta))
	}

	return b.String()
}

func renderHelp(adding bool) string {
	if adding {
		return "tab switch field • enter add • esc cancel"
	}
	return "a add • d delete • n/→ next • p/← previous • 1 name • 2 date • 3 size • enter show • q quit"
}

func renderDebugLine(debug bool, logPath string) string {
	if !debug {
		return ""
	}
	if logPath == "" {
		return "debug • logging disabled"
	}
	return "debug • log: " + logPath
}
