package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/baharkarakas/exercise-tracker/internal/api/validate"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

// parseBody extracts the named fields from either a form-encoded or a JSON
// body. JSON numbers are kept as their literal text so "duration": 30 and
// duration=30 land in the same place.
func parseBody(r *http.Request, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		for _, k := range keys {
			switch v := raw[k].(type) {
			case string:
				out[k] = v
			case json.Number:
				out[k] = v.String()
			}
		}
		return out, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for _, k := range keys {
		out[k] = r.PostFormValue(k)
	}
	return out, nil
}

// classify maps a service error onto an HTTP status.
func classify(err error) int {
	var verr validate.Errs
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
