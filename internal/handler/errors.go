// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config enables neither HTTP nor
// gRPC. Startup aborts on it.
var errNoHandlersAreCreated = errors.New("no transport is configured: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
