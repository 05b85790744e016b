package tui

import (
	"errors"
	"strings"

	"github.com/angie11-11/PhotoApp/internal/domain"
)

const msgUnexpected = "Unexpected error (see logs)"

// userMessage turns an error into the short line shown in the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, domain.ErrEndOfSequence):
		return "You are already at the last photo."
	case errors.Is(err, domain.ErrStartOfSequence):
		return "You are already at the first photo."
	case errors.Is(err, domain.ErrNoCurrent):
		return "No photo selected."
	case errors.Is(err, domain.ErrPhotoNotFound):
		return "Photo is no longer in the album."
	case errors.Is(err, domain.ErrUnknownCriterion):
		return "Unknown sort order."
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindInvalidPhoto:
			if strings.HasPrefix(oe.Op, "album.add") {
				return "Photo name and file path cannot be empty."
			}
			return "File does not exist or is not a valid image file."

		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "imagefile") {
				return "File does not exist or is not a valid image file."
			}
			return "Not found"

		case domain.KindOutOfRange:
			return "No photo at that position."

		default:
			return msgUnexpected
		}
	}

	return msgUnexpected
}
