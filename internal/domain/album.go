package domain

import "fmt"

// Subscription identifies a registered change listener.
type Subscription int

type subscriber struct {
	id Subscription
	fn func()
}

// Album is an ordered, mutable collection of photos.
//
// Insertion order is kept until a sort reorders it. Every structural change
// (Add, a successful Remove, SortBy, Sort) invokes the subscribers synchronously,
// in subscription order, after the change is applied. Reads never notify.
//
// Album is not safe for concurrent use.
type Album struct {
	photos      []Photo
	subscribers []subscriber
	nextID      Subscription
	version     uint64
}

func NewAlbum() *Album {
	return &Album{}
}

// Subscribe registers fn to run after every structural change.
func (a *Album) Subscribe(fn func()) Subscription {
	a.nextID++
	a.subscribers = append(a.subscribers, subscriber{id: a.nextID, fn: fn})
	return a.nextID
}

// Unsubscribe removes a listener. It reports whether s was registered.
func (a *Album) Unsubscribe(s Subscription) bool {
	for i, sub := range a.subscribers {
		if sub.id == s {
			a.subscribers = append(a.subscribers[:i:i], a.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Album) Add(p Photo) {
	a.photos = append(a.photos, p)
	a.changed()
}

// Remove deletes the first photo equal to p.
func (a *Album) Remove(p Photo) error {
	i := a.IndexOf(p)
	if i < 0 {
		return &OpError{
			Op:   "album.remove",
			Kind: KindNotFound,
			Path: p.Path,
			Err:  fmt.Errorf("%q: %w", p.Name, ErrPhotoNotFound),
		}
	}

	a.photos = append(a.photos[:i], a.photos[i+1:]...)
	a.changed()
	return nil
}

func (a *Album) Count() int {
	return len(a.photos)
}

func (a *Album) At(index int) (Photo, error) {
	if index < 0 || index >= len(a.photos) {
		return Photo{}, &OpError{
			Op:   "album.at",
			Kind: KindOutOfRange,
			Err:  fmt.Errorf("index %d not in [0, %d): %w", index, len(a.photos), ErrOutOfRange),
		}
	}
	return a.photos[index], nil
}

// IndexOf returns the index of the first photo equal to p, or -1.
func (a *Album) IndexOf(p Photo) int {
	for i, cur := range a.photos {
		if cur.Equal(p) {
			return i
		}
	}
	return -1
}

// Photos returns a snapshot; changing it does not affect the album.
func (a *Album) Photos() []Photo {
	out := make([]Photo, len(a.photos))
	copy(out, a.photos)
	return out
}

// SortBy reorders the album using a built-in criterion.
func (a *Album) SortBy(c SortCriterion) error {
	s, err := StrategyFor(c)
	if err != nil {
		return err
	}
	return a.Sort(s)
}

// Sort reorders the album with any strategy and notifies subscribers.
// The strategy must return a permutation of its input; anything else is
// rejected with ErrNotPermutation and the album is left as it was.
func (a *Album) Sort(s SortStrategy) error {
	out := s.Sort(a.Photos())
	if !isPermutation(a.photos, out) {
		return &OpError{
			Op:   "album.sort",
			Kind: KindExecution,
			Err:  fmt.Errorf("strategy returned %d photos for %d: %w", len(out), len(a.photos), ErrNotPermutation),
		}
	}
	a.photos = out
	a.changed()
	return nil
}

// Version increases with every structural change.
func (a *Album) Version() uint64 {
	return a.version
}

// Cursor returns a fresh cursor over the current contents.
func (a *Album) Cursor() *Cursor {
	return newCursor(a.Photos())
}

func (a *Album) changed() {
	a.version++
	a.notify()
}

func (a *Album) notify() {
	subs := make([]subscriber, len(a.subscribers))
	copy(subs, a.subscribers)
	for _, s := range subs {
		s.fn()
	}
}

func isPermutation(in, out []Photo) bool {
	if len(in) != len(out) {
		return false
	}
	used := make([]bool, len(in))
	for _, p := range out {
		found := false
		for i, q := range in {
			if !used[i] && q.Equal(p) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
