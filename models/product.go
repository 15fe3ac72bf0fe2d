// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Product types known to the catalog, in display order.
const (
	ProductShampoo     = "shampoo"
	ProductConditioner = "conditioner"
	ProductLeaveIn     = "leave-in"
	ProductCream       = "cream"
	ProductGel         = "gel"
	ProductMousse      = "mousse"
	ProductOil         = "oil"
)

// ProductTypes lists the known product categories in the order the catalog
// shows them. Products of any other type are grouped under "other".
var ProductTypes = []string{
	ProductShampoo,
	ProductConditioner,
	ProductLeaveIn,
	ProductCream,
	ProductGel,
	ProductMousse,
	ProductOil,
}

// Product is a hair-care product in the user's catalog.
type Product struct {
	ID          int64      `json:"id"`
	UserID      *int64     `json:"user_id,omitempty"`
	Brand       string     `json:"brand"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Ingredients []string   `json:"ingredients,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	IsStarred   bool       `json:"is_starred"`
	UsageCount  int        `json:"usage_count"`
	SuccessRate float64    `json:"success_rate"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ProductCreate is the body of POST /products.
type ProductCreate struct {
	Brand       string   `json:"brand" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Ingredients []string `json:"ingredients,omitempty" validate:"omitempty,dive,required"`
	Notes       *string  `json:"notes,omitempty"`
}

// ProductUpdate is the body of PUT /products/{id}. Nil fields are unchanged.
type ProductUpdate struct {
	Brand       *string  `json:"brand,omitempty" validate:"omitempty,min=1"`
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,min=1"`
	Ingredients []string `json:"ingredients,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	IsStarred   *bool    `json:"is_starred,omitempty"`
}
