package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/ports"
)

const previewTimeout = 10 * time.Second

func cmdLoadPreview(p ports.Previewer, path string, width, height int, log *slog.Logger) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
		defer cancel()

		out, err := p.Preview(ctx, path, width, height)
		if err != nil && log != nil {
			log.Warn("preview.failed", "path", path, "err", err)
		}
		return previewLoadedMsg{path: path, preview: out, err: err}
	}
}

func cmdLoadMetadata(r ports.MetadataReader, path string, log *slog.Logger) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		meta, err := r.ReadMetadata(path)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) && log != nil {
			log.Warn("metadata.failed", "path", path, "err", err)
		}
		return metadataLoadedMsg{path: path, meta: meta, err: err}
	}
}
