// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/curllabs/curllabs-client/internal/adapter"
	"github.com/curllabs/curllabs-client/internal/mock"
	"github.com/curllabs/curllabs-client/internal/validators"
	"github.com/curllabs/curllabs-client/models"
)

func newTestProductSvc(t *testing.T) (ProductService, *mock.MockProductsAPI) {
	t.Helper()
	mockProducts := mock.NewMockProductsAPI(gomock.NewController(t))
	return NewClientProductService(mockProducts, validators.NewStructValidator()), mockProducts
}

func TestSplitIngredients(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"aloe", []string{"aloe"}},
		{" aloe vera,  shea butter ,, glycerin ", []string{"aloe vera", "shea butter", "glycerin"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitIngredients(tt.in))
		})
	}
}

func TestClientProductService_Create_TrimsAndSplits(t *testing.T) {
	svc, mockProducts := newTestProductSvc(t)
	ctx := context.Background()

	mockProducts.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.ProductCreate) (models.Product, error) {
			assert.Equal(t, "Bounce", p.Brand)
			assert.Equal(t, "Curl Cream", p.Name)
			assert.Equal(t, models.ProductCream, p.Type)
			assert.Equal(t, []string{"aloe", "shea"}, p.Ingredients)
			assert.Nil(t, p.Notes, "blank notes are not sent")
			return models.Product{ID: 1, Brand: p.Brand, Name: p.Name, Type: p.Type}, nil
		},
	)

	product, err := svc.Create(ctx, ProductInput{
		Brand:       "  Bounce ",
		Name:        "Curl Cream  ",
		Type:        " cream",
		Ingredients: "aloe, , shea,",
		Notes:       "   ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}

func TestClientProductService_Create_MissingFields_NoServerCall(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	_, err := svc.Create(context.Background(), ProductInput{Brand: "   ", Name: "Gel"})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "brand is required")
	assert.Contains(t, err.Error(), "type is required")
}

func TestClientProductService_ToggleStar(t *testing.T) {
	svc, mockProducts := newTestProductSvc(t)
	ctx := context.Background()

	mockProducts.EXPECT().Update(ctx, int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, u models.ProductUpdate) (models.Product, error) {
			require.NotNil(t, u.IsStarred)
			assert.True(t, *u.IsStarred)
			assert.Nil(t, u.Brand)
			return models.Product{ID: 4, IsStarred: true}, nil
		},
	)

	product, err := svc.ToggleStar(ctx, models.Product{ID: 4, IsStarred: false})

	require.NoError(t, err)
	assert.True(t, product.IsStarred)
}

func TestClientProductService_Catalog(t *testing.T) {
	svc, mockProducts := newTestProductSvc(t)
	ctx := context.Background()

	mockProducts.EXPECT().List(ctx).Return([]models.Product{
		{ID: 1, Type: models.ProductGel},
		{ID: 2, Type: models.ProductOil, IsStarred: true},
		{ID: 3, Type: "clay"},
	}, nil)

	catalog, err := svc.Catalog(ctx, "")

	require.NoError(t, err)
	require.Len(t, catalog.Starred, 1)
	assert.Equal(t, int64(2), catalog.Starred[0].ID)
	require.Len(t, catalog.Groups, 1)
	assert.Equal(t, models.ProductGel, catalog.Groups[0].Type)
	require.Len(t, catalog.Other, 1)
}

func TestClientProductService_NotFound(t *testing.T) {
	svc, mockProducts := newTestProductSvc(t)
	ctx := context.Background()

	mockProducts.EXPECT().Delete(ctx, int64(9)).Return(adapter.NewStatusError(http.StatusNotFound, "Product not found"))

	err := svc.Delete(ctx, 9)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Product not found", adapter.Detail(err))
}

func TestClientProductService_InvalidID(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	assert.ErrorIs(t, svc.Delete(context.Background(), 0), ErrInvalidID)
	_, err := svc.Update(context.Background(), -1, models.ProductUpdate{})
	assert.ErrorIs(t, err, ErrInvalidID)
}
