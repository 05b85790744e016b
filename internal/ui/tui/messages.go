package tui

import "github.com/angie11-11/PhotoApp/internal/domain"

type previewLoadedMsg struct {
	path    string
	preview string
	err     error
}

type metadataLoadedMsg struct {
	path string
	meta domain.PhotoMetadata
	err  error
}
