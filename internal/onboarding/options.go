// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package onboarding

// Option is one selectable answer of a wizard step.
type Option struct {
	Value       string
	Label       string
	Description string
}

var CurlPatterns = []Option{
	{Value: "2A", Label: "2A - Wavy (Loose)", Description: "Loose S-shaped waves"},
	{Value: "2B", Label: "2B - Wavy (Defined)", Description: "More defined S-waves"},
	{Value: "2C", Label: "2C - Wavy (Tight)", Description: "Tight S-waves with some spirals"},
	{Value: "3A", Label: "3A - Curly (Loose)", Description: "Large, loose curls"},
	{Value: "3B", Label: "3B - Curly (Defined)", Description: "Medium, springy curls"},
	{Value: "3C", Label: "3C - Curly (Tight)", Description: "Tight, corkscrew curls"},
	{Value: "4A", Label: "4A - Coily (Loose)", Description: "Loose, S-shaped coils"},
	{Value: "4B", Label: "4B - Coily (Zigzag)", Description: "Z-shaped coils"},
	{Value: "4C", Label: "4C - Coily (Tight)", Description: "Tight, densely packed coils"},
}

var Porosities = []Option{
	{Value: "low", Label: "Low Porosity", Description: "Cuticles are tightly closed; products sit on the hair rather than absorb"},
	{Value: "medium", Label: "Medium Porosity", Description: "Cuticles are moderately open; hair absorbs and retains moisture well"},
	{Value: "high", Label: "High Porosity", Description: "Cuticles are very open; hair absorbs moisture quickly and loses it just as fast"},
}

var Densities = []Option{
	{Value: "low", Label: "Low Density", Description: "Your scalp is easily visible through your hair"},
	{Value: "medium", Label: "Medium Density", Description: "Some scalp is visible, but hair covers most of it"},
	{Value: "high", Label: "High Density", Description: "Your scalp is not visible through your hair"},
}

var Thicknesses = []Option{
	{Value: "fine", Label: "Fine", Description: "Individual hair strands are thin and delicate"},
	{Value: "medium", Label: "Medium", Description: "Individual hair strands are average thickness"},
	{Value: "coarse", Label: "Coarse", Description: "Individual hair strands are thick and strong"},
}

var ScalpTypes = []Option{
	{Value: "dry", Label: "Dry Scalp", Description: "Feels tight, may flake and produces little oil"},
	{Value: "oily", Label: "Oily Scalp", Description: "Produces excess oil and feels greasy soon after washing"},
	{Value: "sensitive", Label: "Sensitive Scalp", Description: "Easily irritated by products or temperature"},
	{Value: "normal", Label: "Normal Scalp", Description: "Balanced oil production and no irritation"},
}
