package httpx

import (
	"net/http"
	"strconv"
)

// ItemIDParam reads the {id} path value as a catalog item id.
// Catalog ids are positive integers.
func ItemIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// IntQuery parses an integer query parameter, returning def when absent.
func IntQuery(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatQuery parses a float query parameter, returning def when absent.
func FloatQuery(r *http.Request, key string, def float64) (float64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
