// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device host application runtime.
//
// It wires the device adapter, the workflow core, the background workers
// and the optional dashboard into a single process lifecycle.
package client
