package domain

// Cursor walks a snapshot of an album in both directions.
//
// Position indexes the gaps between photos, from 0 to Len. Current is the
// photo most recently returned by Next or Previous. A cursor never observes
// later changes to the album it came from; build a new one after a mutation.
type Cursor struct {
	photos []Photo
	pos    int
	last   int
}

// NewCursor builds a cursor over a private copy of photos.
func NewCursor(photos []Photo) *Cursor {
	cp := make([]Photo, len(photos))
	copy(cp, photos)
	return newCursor(cp)
}

func newCursor(owned []Photo) *Cursor {
	return &Cursor{photos: owned, last: -1}
}

func (c *Cursor) HasNext() bool {
	return c.pos < len(c.photos)
}

func (c *Cursor) HasPrevious() bool {
	return c.pos > 0
}

func (c *Cursor) Next() (Photo, error) {
	if !c.HasNext() {
		return Photo{}, &OpError{Op: "cursor.next", Kind: KindNavigation, Err: ErrEndOfSequence}
	}
	p := c.photos[c.pos]
	c.last = c.pos
	c.pos++
	return p, nil
}

func (c *Cursor) Previous() (Photo, error) {
	if !c.HasPrevious() {
		return Photo{}, &OpError{Op: "cursor.previous", Kind: KindNavigation, Err: ErrStartOfSequence}
	}
	c.pos--
	c.last = c.pos
	return c.photos[c.pos], nil
}

func (c *Cursor) Current() (Photo, error) {
	if c.last < 0 {
		return Photo{}, &OpError{Op: "cursor.current", Kind: KindNavigation, Err: ErrNoCurrent}
	}
	return c.photos[c.last], nil
}

func (c *Cursor) Len() int      { return len(c.photos) }
func (c *Cursor) Position() int { return c.pos }
