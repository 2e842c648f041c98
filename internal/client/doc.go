// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot command-line client of the users
// API.
//
// A single invocation runs one command (list, get, create or delete)
// through an [adapter.UsersClient] and prints the result.
package client
