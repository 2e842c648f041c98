// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrHTTPServe is returned when the HTTP server stops for any reason
	// other than a graceful shutdown.
	ErrHTTPServe = errors.New("HTTP server failed")

	// ErrGRPCServe is returned when the gRPC server cannot listen or stops
	// for any reason other than a graceful shutdown.
	ErrGRPCServe = errors.New("gRPC server failed")
)
