// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/models"
)

type productsMode int

const (
	productsList productsMode = iota
	productsAdd
	productsEdit
	productsConfirmDelete
)

// productFilters are cycled by the filter key; "" shows everything.
var productFilters = append(append([]string{""}, models.ProductTypes...), models.OtherGroup)

// ProductsModel is the product shelf: starred products first, the rest
// grouped by type. Products can be added, edited, starred and deleted, and
// the ingredient list of the selected one copied.
type ProductsModel struct {
	ctx      context.Context
	products service.ProductService

	catalog models.Catalog
	items   []models.Product
	idx     int
	filter  int

	mode       productsMode
	form       form
	editID     int64
	submitting bool

	loading bool
	errMsg  string
	status  string
}

func NewProductsModel(ctx context.Context, products service.ProductService) *ProductsModel {
	return &ProductsModel{ctx: ctx, products: products}
}

func (m *ProductsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.catalog = msg.catalog
		m.items = msg.catalog.Flatten()
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case productSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = productsList
		m.errMsg = ""
		m.status = msg.status
		return m, m.Init()
	case productDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Product deleted"
		return m, m.Init()
	}

	switch m.mode {
	case productsAdd, productsEdit:
		return m.updateForm(msg)
	case productsConfirmDelete:
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(keyMsg, keys.filter):
		m.filter = (m.filter + 1) % len(productFilters)
		m.idx = 0
		return m, m.Init()
	case key.Matches(keyMsg, keys.newItem):
		m.startForm(nil)
	case key.Matches(keyMsg, keys.edit):
		if p, ok := m.current(); ok {
			m.startForm(&p)
		}
	case key.Matches(keyMsg, keys.star):
		if p, ok := m.current(); ok {
			return m, m.cmdToggleStar(p)
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); ok {
			m.mode = productsConfirmDelete
		}
	case key.Matches(keyMsg, keys.copy):
		p, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := copyIngredients(p); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Ingredients copied"
	}
	return m, nil
}

func (m *ProductsModel) current() (models.Product, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		m.status = errNothingSelected.Error()
		return models.Product{}, false
	}
	return m.items[m.idx], true
}

// startForm opens the add form, or the edit form filled from p.
func (m *ProductsModel) startForm(p *models.Product) {
	var brand, name, productType, ingredients, notes string
	m.mode = productsAdd
	if p != nil {
		m.mode = productsEdit
		m.editID = p.ID
		brand, name, productType = p.Brand, p.Name, p.Type
		ingredients = strings.Join(p.Ingredients, ", ")
		notes = valueOrEmpty(p.Notes)
	}

	m.form = newForm(
		fieldSpec{label: "Brand", value: brand, limit: 100},
		fieldSpec{label: "Name", value: name, limit: 100},
		fieldSpec{label: "Type", placeholder: strings.Join(models.ProductTypes, "/"), value: productType, limit: 50},
		fieldSpec{label: "Ingredients", placeholder: "comma separated", value: ingredients},
		fieldSpec{label: "Notes", value: notes},
	)
	m.errMsg = ""
	m.status = ""
}

func (m *ProductsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = productsList
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			input := service.ProductInput{
				Brand:       m.form.value(0),
				Name:        m.form.value(1),
				Type:        m.form.value(2),
				Ingredients: m.form.value(3),
				Notes:       m.form.value(4),
			}
			if m.mode == productsEdit {
				return m, m.cmdUpdate(m.editID, input)
			}
			return m, m.cmdCreate(input)
		}
	}
	return m, m.form.update(msg)
}

func (m *ProductsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = productsList
		if p, ok := m.current(); ok {
			return m, m.cmdDelete(p.ID)
		}
	case key.Matches(keyMsg, keys.no):
		m.mode = productsList
	}
	return m, nil
}

func (m *ProductsModel) cmdLoad() tea.Cmd {
	ctx, products, filter := m.ctx, m.products, productFilters[m.filter]
	return func() tea.Msg {
		catalog, err := products.Catalog(ctx, filter)
		return catalogLoadedMsg{catalog: catalog, err: err}
	}
}

func (m *ProductsModel) cmdCreate(input service.ProductInput) tea.Cmd {
	ctx, products := m.ctx, m.products
	return func() tea.Msg {
		p, err := products.Create(ctx, input)
		return productSavedMsg{product: p, status: "Product added", err: err}
	}
}

func (m *ProductsModel) cmdUpdate(id int64, input service.ProductInput) tea.Cmd {
	ctx, products := m.ctx, m.products
	return func() tea.Msg {
		update := models.ProductUpdate{
			Brand:       &input.Brand,
			Name:        &input.Name,
			Type:        &input.Type,
			Ingredients: service.SplitIngredients(input.Ingredients),
			Notes:       &input.Notes,
		}
		p, err := products.Update(ctx, id, update)
		return productSavedMsg{product: p, status: "Product updated", err: err}
	}
}

func (m *ProductsModel) cmdToggleStar(p models.Product) tea.Cmd {
	ctx, products := m.ctx, m.products
	return func() tea.Msg {
		updated, err := products.ToggleStar(ctx, p)
		status := "Unstarred " + updated.Name
		if updated.IsStarred {
			status = "Starred " + updated.Name
		}
		return productSavedMsg{product: updated, status: status, err: err}
	}
}

func (m *ProductsModel) cmdDelete(id int64) tea.Cmd {
	ctx, products := m.ctx, m.products
	return func() tea.Msg {
		return productDeletedMsg{err: products.Delete(ctx, id)}
	}
}

func copyIngredients(p models.Product) error {
	if len(p.Ingredients) == 0 {
		return errNothingToCopy
	}
	if err := clipboard.WriteAll(strings.Join(p.Ingredients, ", ")); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}

func (m *ProductsModel) View() string {
	switch m.mode {
	case productsAdd, productsEdit:
		title := "NEW PRODUCT"
		if m.mode == productsEdit {
			title = "EDIT PRODUCT"
		}
		out := m.form.view("Save", m.submitting)
		if m.errMsg != "" {
			out += "\n" + statusLines(m.errMsg, "")
		}
		return renderPage(title, strings.TrimRight(out, "\n"), "esc: cancel │ tab: next field │ enter: save")
	case productsConfirmDelete:
		p, _ := m.current()
		return renderPage("PRODUCTS", confirmModel{message: p.Brand + " " + p.Name}.View(), "y: delete │ n: keep")
	}

	const hotKeys = "a: add │ e: edit │ s: star │ c: copy ingredients │ ctrl+d: delete │ f: filter │ esc: back"

	var b strings.Builder
	b.WriteString(statusLines(m.errMsg, m.status))
	fmt.Fprintf(&b, "Filter: %s\n\n", filterLabel(productFilters[m.filter]))

	if m.loading && len(m.items) == 0 {
		b.WriteString("Loading products...")
		return renderPage("PRODUCTS", b.String(), hotKeys)
	}
	if m.catalog.Len() == 0 {
		b.WriteString("No products yet")
		return renderPage("PRODUCTS", b.String(), hotKeys)
	}

	row := 0
	section := func(title string, products []models.Product) {
		if len(products) == 0 {
			return
		}
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, p := range products {
			b.WriteString(m.renderProduct(row, p))
			row++
		}
		b.WriteString("\n")
	}

	section("Starred", m.catalog.Starred)
	for _, g := range m.catalog.Groups {
		section(typeLabel(g.Type), g.Products)
	}
	section("Other", m.catalog.Other)

	return renderPage("PRODUCTS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProductsModel) renderProduct(row int, p models.Product) string {
	cursor := " "
	if row == m.idx {
		cursor = ">"
	}
	star := " "
	if p.IsStarred {
		star = starStyle.Render("*")
	}
	return fmt.Sprintf("%s %s %-18s │ %-24s │ %-11s │ %3d uses │ %3.0f%%\n",
		cursor, star, fitText(p.Brand, 18), fitText(p.Name, 24), fitText(p.Type, 11), p.UsageCount, p.SuccessRate)
}

func filterLabel(filter string) string {
	if filter == "" {
		return "all"
	}
	return filter
}

func typeLabel(t string) string {
	if t == "" {
		return t
	}
	return strings.ToUpper(t[:1]) + t[1:]
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
