package filter

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ParamError reports a query parameter that could not be parsed.
type ParamError struct {
	Param string
	Value string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("query parameter %s must be a number, got %q", e.Param, e.Value)
}

// ParseParams reads product search parameters from a query string. Empty
// values are treated as absent; non-numeric bounds are rejected.
func ParseParams(q url.Values) (Params, error) {
	var p Params

	if category := q.Get("category"); category != "" {
		p.Category = &category
	}

	if search := strings.TrimSpace(q.Get("search")); search != "" {
		p.Search = &search
	}

	var err error
	if p.MinPrice, err = parseFloat(q, "minPrice"); err != nil {
		return Params{}, err
	}
	if p.MaxPrice, err = parseFloat(q, "maxPrice"); err != nil {
		return Params{}, err
	}
	if p.Rating, err = parseFloat(q, "rating"); err != nil {
		return Params{}, err
	}

	return p, nil
}

func parseFloat(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &ParamError{Param: key, Value: raw}
	}

	return &v, nil
}
