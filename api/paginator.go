package api

import (
	"net/url"
	"strconv"
)

// Paginator holds the limit and offset of a listing request.
type Paginator struct {
	limit  uint
	offset uint
}

// NewPaginator returns a paginator with the default limit and no offset.
func NewPaginator() Paginator {
	return Paginator{limit: DefaultLimit}
}

// Limit returns the page size.
func (p Paginator) Limit() uint { return p.limit }

// Offset returns the number of entries skipped.
func (p Paginator) Offset() uint { return p.offset }

// SetLimit sets the page size. Values at or above MaxLimit are ignored and
// the previous limit is kept.
func (p *Paginator) SetLimit(n uint) {
	if n < MaxLimit {
		p.limit = n
	}
}

// SetOffset sets the number of entries to skip. Any value is accepted.
func (p *Paginator) SetOffset(n uint) {
	p.offset = n
}

// QueryPair is a single query parameter.
type QueryPair struct {
	Key   string
	Value uint
}

// Pairs returns limit and offset, in that order, for endpoints that take
// nothing else.
func (p Paginator) Pairs() []QueryPair {
	return []QueryPair{
		{Key: "limit", Value: p.limit},
		{Key: "offset", Value: p.offset},
	}
}

// AddTo writes limit and offset into q, for endpoints that combine
// pagination with other parameters.
func (p Paginator) AddTo(q url.Values) {
	q.Set("limit", strconv.FormatUint(uint64(p.limit), 10))
	q.Set("offset", strconv.FormatUint(uint64(p.offset), 10))
}

func pairsQuery(pairs []QueryPair) url.Values {
	q := make(url.Values, len(pairs))
	for _, pair := range pairs {
		q.Add(pair.Key, strconv.FormatUint(uint64(pair.Value), 10))
	}
	return q
}
