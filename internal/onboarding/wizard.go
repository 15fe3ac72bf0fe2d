// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package onboarding implements the hair-profile wizard shown after the
// first sign-in.
//
// The wizard walks six steps in a fixed order. The first two (curl pattern
// and porosity) must be answered before moving on; the rest may be skipped.
// Submitting sends every answered field as one profile update.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/curllabs/curllabs-client/models"
)

var (
	ErrCurlPatternRequired = errors.New("please select your curl pattern")
	ErrPorosityRequired    = errors.New("please select your hair porosity")
	ErrRequiredIncomplete  = errors.New("please complete all required fields")
	ErrSkipNotAllowed      = errors.New("this step cannot be skipped")
)

type Field string

const (
	FieldCurlPattern Field = "curl_pattern"
	FieldPorosity    Field = "porosity"
	FieldDensity     Field = "density"
	FieldThickness   Field = "thickness"
	FieldScalpType   Field = "scalp_type"
	FieldLocation    Field = "location"
)

// Step describes one wizard page. Steps without options take free text.
type Step struct {
	Field    Field
	Title    string
	Prompt   string
	Options  []Option
	Required error
}

// firstOptionalStep is the index of the first step that may be skipped.
const firstOptionalStep = 2

var steps = []Step{
	{Field: FieldCurlPattern, Title: "Curl pattern", Prompt: "What is your curl pattern?", Options: CurlPatterns, Required: ErrCurlPatternRequired},
	{Field: FieldPorosity, Title: "Porosity", Prompt: "How porous is your hair?", Options: Porosities, Required: ErrPorosityRequired},
	{Field: FieldDensity, Title: "Density", Prompt: "How dense is your hair?", Options: Densities},
	{Field: FieldThickness, Title: "Thickness", Prompt: "How thick are your strands?", Options: Thicknesses},
	{Field: FieldScalpType, Title: "Scalp", Prompt: "What is your scalp like?", Options: ScalpTypes},
	{Field: FieldLocation, Title: "Location", Prompt: "Where do you live? Used to track humidity."},
}

// ProfileUpdater stores the collected profile.
type ProfileUpdater interface {
	Update(ctx context.Context, profile models.UserProfile) (models.User, error)
}

// Wizard holds the current step index, the answers given so far and the last
// validation error. The zero value is not usable; call New.
type Wizard struct {
	current int
	values  map[Field]string
	err     error
}

func New() *Wizard {
	return &Wizard{values: make(map[Field]string, len(steps))}
}

// Total is the number of steps.
func (w *Wizard) Total() int { return len(steps) }

// Index is the zero-based current step.
func (w *Wizard) Index() int { return w.current }

// Step returns the current step.
func (w *Wizard) Step() Step { return steps[w.current] }

// Err returns the error of the last Next or Skip, cleared by Select, Back and
// successful moves.
func (w *Wizard) Err() error { return w.err }

func (w *Wizard) Value(field Field) string { return w.values[field] }

// Select answers the current step.
func (w *Wizard) Select(value string) {
	w.values[w.Step().Field] = strings.TrimSpace(value)
	w.err = nil
}

// Next moves forward when the current step is answered or optional. It stays
// on the last step.
func (w *Wizard) Next() error {
	if !w.CanProceed() {
		w.err = w.Step().Required
		return w.err
	}

	w.err = nil
	if !w.IsLastStep() {
		w.current++
	}
	return nil
}

// Back moves to the previous step; a no-op on the first.
func (w *Wizard) Back() {
	if w.current > 0 {
		w.current--
	}
	w.err = nil
}

// Skip moves forward without an answer. Only optional steps before the last
// one can be skipped.
func (w *Wizard) Skip() error {
	if !w.CanSkip() {
		return ErrSkipNotAllowed
	}

	w.current++
	w.err = nil
	return nil
}

func (w *Wizard) CanSkip() bool {
	return w.current >= firstOptionalStep && !w.IsLastStep()
}

// CanProceed reports whether the current step allows moving on.
func (w *Wizard) CanProceed() bool {
	return w.Step().Required == nil || w.values[w.Step().Field] != ""
}

func (w *Wizard) IsLastStep() bool {
	return w.current == len(steps)-1
}

// Progress is the completion percentage including the current step.
func (w *Wizard) Progress() int {
	return int(math.Round(float64(w.current+1) / float64(len(steps)) * 100))
}

// Profile returns the answers as a profile update; unanswered fields are nil.
func (w *Wizard) Profile() models.UserProfile {
	return models.UserProfile{
		CurlPattern: w.answer(FieldCurlPattern),
		Porosity:    w.answer(FieldPorosity),
		Density:     w.answer(FieldDensity),
		Thickness:   w.answer(FieldThickness),
		ScalpType:   w.answer(FieldScalpType),
		Location:    w.answer(FieldLocation),
	}
}

// Submit sends the profile once both required answers are present.
func (w *Wizard) Submit(ctx context.Context, profiles ProfileUpdater) (models.User, error) {
	if w.values[FieldCurlPattern] == "" || w.values[FieldPorosity] == "" {
		w.err = ErrRequiredIncomplete
		return models.User{}, w.err
	}

	user, err := profiles.Update(ctx, w.Profile())
	if err != nil {
		w.err = fmt.Errorf("save profile: %w", err)
		return models.User{}, w.err
	}

	w.err = nil
	return user, nil
}

func (w *Wizard) answer(field Field) *string {
	v, ok := w.values[field]
	if !ok || v == "" {
		return nil
	}
	return &v
}
