// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strconv"
)

// resource implements the Get/Create/Update/Delete calls shared by every
// CRUD collection of the backend.
type resource[T, C, U any] struct {
	client *SessionClient
	path   string
}

func (r resource[T, C, U]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r resource[T, C, U]) list(ctx context.Context, query map[string]string) ([]T, error) {
	items := make([]T, 0)
	err := r.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   r.path,
		Query:  query,
		Result: &items,
	})
	return items, err
}

func (r resource[T, C, U]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	err := r.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   r.itemPath(id),
		Result: &item,
	})
	return item, err
}

func (r resource[T, C, U]) Create(ctx context.Context, create C) (T, error) {
	var item T
	err := r.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   r.path,
		Body:   create,
		Result: &item,
	})
	return item, err
}

func (r resource[T, C, U]) Update(ctx context.Context, id int64, update U) (T, error) {
	var item T
	err := r.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   r.itemPath(id),
		Body:   update,
		Result: &item,
	})
	return item, err
}

func (r resource[T, C, U]) Delete(ctx context.Context, id int64) error {
	return r.client.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   r.itemPath(id),
	})
}
