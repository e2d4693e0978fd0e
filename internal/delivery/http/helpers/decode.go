package helpers

import (
	"encoding/json"
	"net/http"
)

// Decode decodes the request body into dest with DisallowUnknownFields. On
// failure it writes a 400 JSON error and returns false; callers should return
// immediately then. Field and domain validation is the service's job so that
// all violations travel together in one response.
func Decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	return true
}
