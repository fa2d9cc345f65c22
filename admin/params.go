package admin

import (
	"net/url"
	"strconv"
	"strings"
)

// ListParams is the shared filter/sort/pagination shape of list reads.
// The zero value lists everything with server-side defaults. Distinct
// params produce distinct query keys, so every filtered view caches
// independently.
type ListParams struct {
	// Q is a free-text search term.
	Q string

	// Offset and Limit paginate; zero values are omitted from the query.
	Offset int
	Limit  int

	// Order names the sort field, prefixed with "-" for descending,
	// e.g. "-created_at".
	Order string

	// ID restricts the list to the given record ids.
	ID []string

	// Fields selects and expands response fields, comma separated.
	Fields string
}

// Values implements fetch.QueryParams.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Q != "" {
		v.Set("q", p.Q)
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Order != "" {
		v.Set("order", p.Order)
	}
	if len(p.ID) > 0 {
		v.Set("id", strings.Join(p.ID, ","))
	}
	if p.Fields != "" {
		v.Set("fields", p.Fields)
	}
	return v
}

// DetailParams refines a get-one read with field selection.
type DetailParams struct {
	Fields string
}

// Values implements fetch.QueryParams.
func (p DetailParams) Values() url.Values {
	v := url.Values{}
	if p.Fields != "" {
		v.Set("fields", p.Fields)
	}
	return v
}
