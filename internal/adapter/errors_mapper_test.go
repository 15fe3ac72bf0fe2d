// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client, _ := newTestClient(t, srv.URL)
			err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/anything"})

			require.ErrorIs(t, err, tt.want)
			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
		})
	}
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: ""},
		{name: "string detail", body: `{"detail":"Product not found"}`, want: "Product not found"},
		{name: "plain text", body: "gateway timeout", want: "gateway timeout"},
		{
			name: "validation list",
			body: `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"},{"loc":["body","password"],"msg":"field required"}]}`,
			want: "email: value is not a valid email address; password: field required",
		},
		{name: "no detail key", body: `{"error":"x"}`, want: `{"error":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDetail([]byte(tt.body)))
		})
	}
}

func TestDetail(t *testing.T) {
	statusErr := NewStatusError(http.StatusConflict, "already exists")

	assert.Equal(t, "already exists", Detail(fmt.Errorf("wrapped: %w", statusErr)))
	assert.Equal(t, "plain", Detail(errors.New("plain")))
	assert.Equal(t, "", Detail(nil))
	assert.Equal(t, "conflict: already exists", statusErr.Error())
}
