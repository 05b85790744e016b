package domain

import (
	"errors"
	"testing"
	"time"
)

func threePhotoAlbum(t *testing.T) *Album {
	t.Helper()
	a := NewAlbum()
	a.Add(mustPhoto(t, "a", 1, t0))
	a.Add(mustPhoto(t, "b", 2, t0.Add(time.Minute)))
	a.Add(mustPhoto(t, "c", 3, t0.Add(2*time.Minute)))
	return a
}

func TestCursorEmpty(t *testing.T) {
	c := NewAlbum().Cursor()

	if c.HasNext() || c.HasPrevious() {
		t.Fatalf("expected no movement on empty cursor")
	}

	_, err := c.Next()
	if !errors.Is(err, ErrEndOfSequence) || !IsKind(err, KindNavigation) {
		t.Fatalf("expected navigation exhaustion, got %v", err)
	}
	if errors.Is(err, ErrOutOfRange) || IsKind(err, KindOutOfRange) {
		t.Fatalf("empty Next must not report out of range")
	}

	_, err = c.Previous()
	if !errors.Is(err, ErrStartOfSequence) || !IsKind(err, KindNavigation) {
		t.Fatalf("expected start of sequence, got %v", err)
	}
}

func TestCursorFreshAfterMutation(t *testing.T) {
	a := threePhotoAlbum(t)
	c := a.Cursor()
	_, _ = c.Next()
	_, _ = c.Next()

	a.Add(mustPhoto(t, "d", 4, t0))
	fresh := a.Cursor()

	if fresh.HasPrevious() {
		t.Fatalf("expected fresh cursor without previous")
	}
	if !fresh.HasNext() {
		t.Fatalf("expected fresh cursor with next")
	}
	if fresh.Len() != 4 {
		t.Fatalf("expected len 4, got %d", fresh.Len())
	}
}

func TestCursorDoesNotSeeLaterChanges(t *testing.T) {
	a := threePhotoAlbum(t)
	c := a.Cursor()

	first, _ := a.At(0)
	_ = a.Remove(first)

	p, err := c.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if p.Name != "a" {
		t.Fatalf("expected snapshot element a, got %q", p.Name)
	}
	if c.Len() != 3 {
		t.Fatalf("expected snapshot len 3, got %d", c.Len())
	}
}

func TestCursorRoundTrip(t *testing.T) {
	a := threePhotoAlbum(t)

	for k := 0; k <= a.Count(); k++ {
		c := a.Cursor()
		var forward, backward []string
		for i := 0; i < k; i++ {
			p, err := c.Next()
			if err != nil {
				t.Fatalf("k=%d Next: %v", k, err)
			}
			forward = append(forward, p.Name)
		}
		for i := 0; i < k; i++ {
			p, err := c.Previous()
			if err != nil {
				t.Fatalf("k=%d Previous: %v", k, err)
			}
			backward = append(backward, p.Name)
		}

		if c.HasPrevious() {
			t.Fatalf("k=%d: expected to be back at start", k)
		}
		for i := range forward {
			if forward[i] != backward[len(backward)-1-i] {
				t.Fatalf("k=%d: backward %v is not reverse of forward %v", k, backward, forward)
			}
		}
	}
}

func TestCursorBoundaries(t *testing.T) {
	c := threePhotoAlbum(t).Cursor()

	for i := 0; i < 3; i++ {
		if _, err := c.Next(); err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
	}
	if c.HasNext() {
		t.Fatalf("expected end")
	}
	if !c.HasPrevious() {
		t.Fatalf("expected previous at end")
	}
	if _, err := c.Next(); !errors.Is(err, ErrEndOfSequence) {
		t.Fatalf("expected ErrEndOfSequence, got %v", err)
	}
	if c.Position() != 3 {
		t.Fatalf("failed Next must not move, position=%d", c.Position())
	}
}

func TestCursorCurrentIsLastReturned(t *testing.T) {
	c := threePhotoAlbum(t).Cursor()

	if _, err := c.Current(); !errors.Is(err, ErrNoCurrent) {
		t.Fatalf("expected ErrNoCurrent before navigation, got %v", err)
	}

	steps := []struct {
		move func() (Photo, error)
		want string
	}{
		{c.Next, "a"},
		{c.Next, "b"},
		{c.Previous, "b"},
		{c.Previous, "a"},
		{c.Next, "a"},
	}
	for i, s := range steps {
		got, err := s.move()
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got.Name != s.want {
			t.Fatalf("step %d: expected %q, got %q", i, s.want, got.Name)
		}
		cur, err := c.Current()
		if err != nil {
			t.Fatalf("step %d Current: %v", i, err)
		}
		if !cur.Equal(got) {
			t.Fatalf("step %d: Current %q differs from last returned %q", i, cur.Name, got.Name)
		}
	}
}

func TestCursorFailedMoveKeepsCurrent(t *testing.T) {
	c := threePhotoAlbum(t).Cursor()
	_, _ = c.Next()
	_, _ = c.Previous()

	if _, err := c.Previous(); err == nil {
		t.Fatalf("expected start of sequence")
	}
	cur, err := c.Current()
	if err != nil || cur.Name != "a" {
		t.Fatalf("expected current a, got %v %v", cur.Name, err)
	}
}

func TestNewCursorCopiesInput(t *testing.T) {
	in := []Photo{mustPhoto(t, "a", 1, t0)}
	c := NewCursor(in)
	in[0] = mustPhoto(t, "z", 1, t0)

	p, err := c.Next()
	if err != nil || p.Name != "a" {
		t.Fatalf("expected a, got %v %v", p.Name, err)
	}
}
