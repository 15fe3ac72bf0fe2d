// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// OtherGroup names the catalog group holding products of unknown types.
const OtherGroup = "other"

// ProductGroup is the non-starred products of one type.
type ProductGroup struct {
	Type     string
	Products []Product
}

// Catalog is a product list arranged for display: starred products first,
// then one group per known type in [ProductTypes] order, then Other.
type Catalog struct {
	Starred []Product
	Groups  []ProductGroup
	Other   []Product
}

// NewCatalog arranges products. A non-empty filterType keeps only products of
// that type; [OtherGroup] keeps the ones of unknown types. Empty groups are
// left out. Input order is kept within every section.
func NewCatalog(products []Product, filterType string) Catalog {
	var catalog Catalog
	byType := make(map[string][]Product, len(ProductTypes))

	for _, p := range products {
		if !matchesType(p, filterType) {
			continue
		}

		switch {
		case p.IsStarred:
			catalog.Starred = append(catalog.Starred, p)
		case slices.Contains(ProductTypes, p.Type):
			byType[p.Type] = append(byType[p.Type], p)
		default:
			catalog.Other = append(catalog.Other, p)
		}
	}

	for _, t := range ProductTypes {
		if list := byType[t]; len(list) > 0 {
			catalog.Groups = append(catalog.Groups, ProductGroup{Type: t, Products: list})
		}
	}

	return catalog
}

// Len returns the number of products in the catalog.
func (c Catalog) Len() int {
	n := len(c.Starred) + len(c.Other)
	for _, g := range c.Groups {
		n += len(g.Products)
	}
	return n
}

// Flatten returns the products in display order.
func (c Catalog) Flatten() []Product {
	out := make([]Product, 0, c.Len())
	out = append(out, c.Starred...)
	for _, g := range c.Groups {
		out = append(out, g.Products...)
	}
	return append(out, c.Other...)
}

func matchesType(p Product, filterType string) bool {
	switch filterType {
	case "":
		return true
	case OtherGroup:
		return !slices.Contains(ProductTypes, p.Type)
	default:
		return p.Type == filterType
	}
}
