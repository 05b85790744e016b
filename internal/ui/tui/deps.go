package tui

import (
	"log/slog"

	"github.com/angie11-11/PhotoApp/internal/domain"
	"github.com/angie11-11/PhotoApp/internal/ports"
	"github.com/angie11-11/PhotoApp/internal/usecase"
)

type Deps struct {
	Album     *usecase.ManageAlbum
	Previewer ports.Previewer
	Metadata  ports.MetadataReader
	Config    domain.Config

	Logger  *slog.Logger
	Debug   bool
	LogPath string
}
