package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"hackverse/internal/domain"
)

// errorPayload covers the error shapes the platform returns: {error}, {message},
// {errors:[{path,message}]} and {errors:["..."]}.
type errorPayload struct {
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

type fieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func decodeError(resp *http.Response) *domain.APIError {
	apiErr := &domain.APIError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var p errorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}

	apiErr.Message = p.Message
	if apiErr.Message == "" {
		apiErr.Message = p.Error
	}
	apiErr.Detail = p.Error

	if len(p.Errors) == 0 {
		return apiErr
	}
	var fields []fieldError
	if err := json.Unmarshal(p.Errors, &fields); err == nil {
		for _, f := range fields {
			if f.Path == "" {
				apiErr.Messages = append(apiErr.Messages, f.Message)
				continue
			}
			if apiErr.Fields == nil {
				apiErr.Fields = map[string]string{}
			}
			apiErr.Fields[f.Path] = f.Message
		}
		return apiErr
	}
	var messages []string
	if err := json.Unmarshal(p.Errors, &messages); err == nil {
		apiErr.Messages = append(apiErr.Messages, messages...)
	}
	return apiErr
}
