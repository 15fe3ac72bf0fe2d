// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services and the background weather
// capture into a single process lifecycle: restore or sign in, complete the
// hair profile when needed, run the main loop, and start over after sign-out
// or session expiry.
package client
