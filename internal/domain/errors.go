package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors shared across forms, services and adapters.
var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrValidation     = errors.New("validation failed")
	ErrServer         = errors.New("server error")
	ErrTransport      = errors.New("transport error")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownField   = errors.New("unknown field")
	ErrItemType       = errors.New("item type does not match field")
	ErrNotFinalStep   = errors.New("submission is only allowed on the final step")
	ErrAlreadyInvited = errors.New("judge already invited")
)

// ValidationErrors maps a field key (e.g. "email", "memberEmail-0") to a
// user-facing message. An empty map means valid.
type ValidationErrors map[string]string

// Add records msg for key unless the key already has a message.
func (v ValidationErrors) Add(key, msg string) {
	if _, ok := v[key]; !ok {
		v[key] = msg
	}
}

// Merge copies all entries of other into v, keeping existing keys.
func (v ValidationErrors) Merge(other ValidationErrors) {
	for k, msg := range other {
		v.Add(k, msg)
	}
}

// Keys returns the field keys in sorted order.
func (v ValidationErrors) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, k := range v.Keys() {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match a ValidationErrors value.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// OrNil returns nil when there are no entries so callers can return it as an error.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
