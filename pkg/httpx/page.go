package httpx

import (
	"fmt"
	"net/http"
	"strconv"
)

// Pagination defaults applied when the query string omits from/size.
const (
	DefaultPageFrom = 0
	DefaultPageSize = 10
)

// Page is an offset/limit pair parsed from the from/size query parameters.
type Page struct {
	From int
	Size int
}

// Limit returns the page size as a SQL LIMIT value.
func (p Page) Limit() int { return p.Size }

// Offset returns the page start as a SQL OFFSET value.
func (p Page) Offset() int { return p.From }

// ParsePage reads the from/size query parameters, applying defaults when
// absent. from must be >= 0 and size must be >= 1; anything else is a
// request-validation error the handler should turn into a 400.
func ParsePage(r *http.Request) (Page, error) {
	p := Page{From: DefaultPageFrom, Size: DefaultPageSize}

	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, fmt.Errorf("invalid \"from\" value %q", raw)
		}
		p.From = v
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, fmt.Errorf("invalid \"size\" value %q", raw)
		}
		p.Size = v
	}

	if p.From < 0 || p.Size < 1 {
		return Page{}, fmt.Errorf("invalid \"size\" or \"from\"")
	}
	return p, nil
}
