// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

// Package client implements the interactive owner client runtime.
//
// It wires the terminal UI, client services, the local cache, and the server
// adapter into a single process lifecycle.
package client
