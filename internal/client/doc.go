// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the synchronizer application runtime.
//
// It wires authentication, the reconciliation pass, durable state and the
// pass history into a single process lifecycle, and decides between the
// one-shot, continuous and history-listing modes.
package client
