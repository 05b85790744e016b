package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SortStrategy orders photos. Implementations must be stable, must not
// modify the input slice, and must return a permutation of it.
type SortStrategy interface {
	Sort(photos []Photo) []Photo
}

// SortStrategyFunc adapts a less function into a stable SortStrategy.
type SortStrategyFunc func(a, b Photo) bool

func (f SortStrategyFunc) Sort(photos []Photo) []Photo {
	return stableSorted(photos, f)
}

// ByName orders by name, case-sensitive, ascending.
type ByName struct{}

func (ByName) Sort(photos []Photo) []Photo {
	return stableSorted(photos, func(a, b Photo) bool { return a.Name < b.Name })
}

// ByDate orders by AddedAt, oldest first.
type ByDate struct{}

func (ByDate) Sort(photos []Photo) []Photo {
	return stableSorted(photos, func(a, b Photo) bool { return a.AddedAt.Before(b.AddedAt) })
}

// BySize orders by SizeBytes, smallest first.
type BySize struct{}

func (BySize) Sort(photos []Photo) []Photo {
	return stableSorted(photos, func(a, b Photo) bool { return a.SizeBytes < b.SizeBytes })
}

func stableSorted(in []Photo, less func(a, b Photo) bool) []Photo {
	out := make([]Photo, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortCriterion names a built-in ordering.
type SortCriterion string

const (
	SortByName SortCriterion = "name"
	SortByDate SortCriterion = "date"
	SortBySize SortCriterion = "size"
)

// SortCriteria lists the built-in criteria in menu order.
func SortCriteria() []SortCriterion {
	return []SortCriterion{SortByName, SortByDate, SortBySize}
}

// ParseSortCriterion accepts the criterion names used in config files and flags.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName, nil
	case "date", "dateadded", "date-added", "date_added":
		return SortByDate, nil
	case "size":
		return SortBySize, nil
	default:
		return "", unknownCriterion("sort.parse", s)
	}
}

// StrategyFor returns the strategy implementing c.
func StrategyFor(c SortCriterion) (SortStrategy, error) {
	switch c {
	case SortByName:
		return ByName{}, nil
	case SortByDate:
		return ByDate{}, nil
	case SortBySize:
		return BySize{}, nil
	default:
		return nil, unknownCriterion("sort.strategy", string(c))
	}
}

func unknownCriterion(op, s string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("%q (expected name|date|size): %w", s, ErrUnknownCriterion),
	}
}
