// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// StatusError is a non-2xx backend response. It unwraps to the sentinel
// matching its status code, so callers keep using [errors.Is].
type StatusError struct {
	StatusCode int
	// Detail is the backend's "detail" text, or the raw body when the body
	// carries none.
	Detail string

	kind error
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Detail)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// Detail returns the backend's explanation carried by err, or err's own text
// when err is not a [StatusError].
func Detail(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Detail != "" {
		return statusErr.Detail
	}

	return err.Error()
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return NewStatusError(resp.StatusCode(), parseDetail(resp.Body()))
}

// NewStatusError builds the error for a non-2xx statusCode carrying detail.
func NewStatusError(statusCode int, detail string) *StatusError {
	statusErr := &StatusError{StatusCode: statusCode, Detail: detail}

	switch statusCode {
	case http.StatusBadRequest:
		statusErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.kind = ErrForbidden
	case http.StatusNotFound:
		statusErr.kind = ErrNotFound
	case http.StatusConflict:
		statusErr.kind = ErrConflict
	case http.StatusUnprocessableEntity:
		statusErr.kind = ErrUnprocessable
	case http.StatusBadGateway:
		statusErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.kind = ErrInternalServerError
	default:
		statusErr.kind = fmt.Errorf("%w %d", ErrUnexpectedStatus, statusCode)
		if statusErr.Detail == "" {
			statusErr.Detail = http.StatusText(statusCode)
		}
	}

	return statusErr
}

// parseDetail extracts {"detail": ...}. Validation failures carry a list of
// {"loc", "msg"} objects whose messages are joined.
func parseDetail(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return raw
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		messages := make([]string, 0, len(items))
		for _, item := range items {
			if len(item.Loc) > 0 {
				messages = append(messages, fmt.Sprintf("%v: %s", item.Loc[len(item.Loc)-1], item.Msg))
				continue
			}
			messages = append(messages, item.Msg)
		}
		return strings.Join(messages, "; ")
	}

	return string(envelope.Detail)
}
