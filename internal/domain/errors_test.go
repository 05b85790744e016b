package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	err := &OpError{
		Op:   "album.at",
		Kind: KindOutOfRange,
		Err:  ErrOutOfRange,
	}

	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindOutOfRange {
		t.Fatalf("expected kind %s", KindOutOfRange)
	}
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{Op: "imagefile.inspect", Kind: KindNotFound, Path: "/tmp/x.jpg", Err: ErrNotFound}
	msg := err.Error()
	if !strings.Contains(msg, "path=/tmp/x.jpg") {
		t.Fatalf("expected path in message, got %q", msg)
	}
	if !strings.HasPrefix(msg, "imagefile.inspect: not_found") {
		t.Fatalf("unexpected prefix: %q", msg)
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "cursor.next", Kind: KindNavigation, Err: ErrEndOfSequence}

	if !IsKind(err, KindNavigation) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindOutOfRange) {
		t.Fatalf("navigation must not classify as out of range")
	}
	if IsKind(errors.New("plain"), KindNavigation) {
		t.Fatalf("plain errors have no kind")
	}
	if !IsBoundary(err) {
		t.Fatalf("expected boundary")
	}
}
