// Package paging describes page requests and the page metadata derived from a total count.
package paging

import (
	"fmt"
	"math"
	"strings"

	"ordermanager/internal/pkg/errs"
)

// Direction is the sort direction of a page request.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc" or "desc" in any case. Anything other than
// "desc" sorts ascending, matching how the listing endpoint has always behaved.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

// Request selects one page of a sorted result set. Page is zero based.
type Request struct {
	Page      int
	Size      int
	SortBy    string
	Direction Direction
}

// MaxPage and MaxSize bound page requests to the int32 range so that
// Offset always fits in an int64.
const (
	MaxPage = math.MaxInt32
	MaxSize = math.MaxInt32
)

// NewRequest validates page and size. Page must be in [0, MaxPage] and size
// in [1, MaxSize].
func NewRequest(page, size int, sortBy string, direction Direction) (Request, error) {
	if page < 0 {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is negative", page))
	}
	if page > MaxPage {
		return Request{}, errs.NewValueIsOutOfRangeErrorWithCause("page", page, 0, MaxPage,
			fmt.Errorf("%d exceeds %d", page, MaxPage))
	}
	if size <= 0 {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not greater than 0", size))
	}
	if size > MaxSize {
		return Request{}, errs.NewValueIsOutOfRangeErrorWithCause("size", size, 1, MaxSize,
			fmt.Errorf("%d exceeds %d", size, MaxSize))
	}
	return Request{Page: page, Size: size, SortBy: sortBy, Direction: direction}, nil
}

// Offset returns the number of rows to skip.
func (r Request) Offset() int64 {
	return int64(r.Page) * int64(r.Size)
}

// Page is a slice of items plus the metadata needed to navigate the rest.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int64
}

// NewPage builds a page for the given request.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	return Page[T]{
		Items:      items,
		Number:     req.Page,
		Size:       req.Size,
		TotalItems: total,
	}
}

// TotalPages is ceil(TotalItems / Size).
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalItems + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}

// Map converts the items of a page keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:      items,
		Number:     p.Number,
		Size:       p.Size,
		TotalItems: p.TotalItems,
	}
}
