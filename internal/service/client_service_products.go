// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

type clientProductService struct {
	products  adapter.ProductsAPI
	validator validators.Validator
}

func NewClientProductService(products adapter.ProductsAPI, validator validators.Validator) ProductService {
	return &clientProductService{products: products, validator: validator}
}

func (s *clientProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", mapAdapterError(err))
	}
	return products, nil
}

func (s *clientProductService) Catalog(ctx context.Context, filterType string) (models.Catalog, error) {
	products, err := s.List(ctx)
	if err != nil {
		return models.Catalog{}, err
	}
	return models.NewCatalog(products, strings.TrimSpace(filterType)), nil
}

func (s *clientProductService) Create(ctx context.Context, input ProductInput) (models.Product, error) {
	product := models.ProductCreate{
		Brand:       strings.TrimSpace(input.Brand),
		Name:        strings.TrimSpace(input.Name),
		Type:        strings.TrimSpace(input.Type),
		Ingredients: SplitIngredients(input.Ingredients),
		Notes:       optional(&input.Notes),
	}

	if err := s.validator.Validate(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("product validation: %w", err)
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", mapAdapterError(err))
	}
	return created, nil
}

func (s *clientProductService) Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	if id <= 0 {
		return models.Product{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Product{}, fmt.Errorf("product validation: %w", err)
	}

	updated, err := s.products.Update(ctx, id, update)
	if err != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", id, mapAdapterError(err))
	}
	return updated, nil
}

func (s *clientProductService) ToggleStar(ctx context.Context, product models.Product) (models.Product, error) {
	starred := !product.IsStarred
	return s.Update(ctx, product.ID, models.ProductUpdate{IsStarred: &starred})
}

func (s *clientProductService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, mapAdapterError(err))
	}
	return nil
}

// SplitIngredients splits a comma-separated list, trimming every entry and
// dropping empty ones. Returns nil when nothing is left.
func SplitIngredients(list string) []string {
	var out []string
	for ingredient := range strings.SplitSeq(list, ",") {
		if ingredient = strings.TrimSpace(ingredient); ingredient != "" {
			out = append(out, ingredient)
		}
	}
	return out
}
