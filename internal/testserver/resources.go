// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testserver

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/curllabs/curllabs-client/internal/utils"
	"github.com/curllabs/curllabs-client/models"
)

func (s *Server) currentAccount(w http.ResponseWriter, r *http.Request) (*account, bool) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	acc, ok := s.accountByID(userID)
	if !ok {
		utils.WriteDetail(w, "User not found", http.StatusNotFound)
	}
	return acc, ok
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.currentAccount(w, r)
	if !ok {
		return
	}
	_, _ = utils.WriteJSON(w, acc.user, http.StatusOK)
}

func (s *Server) updateMe(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.WriteDetail(w, "Invalid payload", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.currentAccount(w, r)
	if !ok {
		return
	}
	if update.Email != nil {
		acc.user.Email = *update.Email
	}
	applyProfile(&acc.user, update.UserProfile)

	_, _ = utils.WriteJSON(w, acc.user, http.StatusOK)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.WriteDetail(w, "Invalid payload", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.currentAccount(w, r)
	if !ok {
		return
	}
	applyProfile(&acc.user, profile)

	_, _ = utils.WriteJSON(w, acc.user, http.StatusOK)
}

func applyProfile(user *models.User, profile models.UserProfile) {
	if profile.CurlPattern != nil {
		user.CurlPattern = profile.CurlPattern
	}
	if profile.Porosity != nil {
		user.Porosity = profile.Porosity
	}
	if profile.Density != nil {
		user.Density = profile.Density
	}
	if profile.Thickness != nil {
		user.Thickness = profile.Thickness
	}
	if profile.ScalpType != nil {
		user.ScalpType = profile.ScalpType
	}
	if profile.Location != nil {
		user.Location = profile.Location
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	s.mu.Lock()
	items := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.UserID != nil && *p.UserID == userID {
			items = append(items, p)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(items, func(a, b models.Product) int { return int(a.ID - b.ID) })
	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var create models.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil || create.Brand == "" || create.Name == "" || create.Type == "" {
		utils.WriteDetail(w, "Invalid product payload", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	s.nextProduct++
	product := models.Product{
		ID:          s.nextProduct,
		UserID:      &userID,
		Brand:       create.Brand,
		Name:        create.Name,
		Type:        create.Type,
		Ingredients: create.Ingredients,
		Notes:       create.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	s.products[product.ID] = product
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, product, http.StatusCreated)
}

// ownedProduct looks the product up under s.mu.
func (s *Server) ownedProduct(w http.ResponseWriter, r *http.Request) (models.Product, bool) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteDetail(w, "Invalid product id", http.StatusUnprocessableEntity)
		return models.Product{}, false
	}

	product, ok := s.products[id]
	if !ok || product.UserID == nil || *product.UserID != userID {
		utils.WriteDetail(w, "Product not found", http.StatusNotFound)
		return models.Product{}, false
	}

	return product, true
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.ownedProduct(w, r)
	if !ok {
		return
	}
	_, _ = utils.WriteJSON(w, product, http.StatusOK)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var update models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.WriteDetail(w, "Invalid product payload", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.ownedProduct(w, r)
	if !ok {
		return
	}

	if update.Brand != nil {
		product.Brand = *update.Brand
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Type != nil {
		product.Type = *update.Type
	}
	if update.Ingredients != nil {
		product.Ingredients = update.Ingredients
	}
	if update.Notes != nil {
		product.Notes = update.Notes
	}
	if update.IsStarred != nil {
		product.IsStarred = *update.IsStarred
	}
	now := time.Now().UTC()
	product.UpdatedAt = &now
	s.products[product.ID] = product

	_, _ = utils.WriteJSON(w, product, http.StatusOK)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.ownedProduct(w, r)
	if !ok {
		return
	}
	delete(s.products, product.ID)

	w.WriteHeader(http.StatusNoContent)
}
