package http

import (
	"net/http"
	"strings"
)

// Validator is implemented by request values that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// QueryBinder fills itself from URL query parameters.
type QueryBinder interface {
	Validator
	Bind(r *http.Request)
}

// BindAndValidate binds dest from the query string and runs Validate. On
// failure it writes a 400 JSON error and returns false; callers should return
// immediately.
func BindAndValidate(w http.ResponseWriter, r *http.Request, dest QueryBinder) bool {
	dest.Bind(r)
	if errs := dest.Validate(); len(errs) > 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
		return false
	}
	return true
}
