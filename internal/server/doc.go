// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the blog API.
//
// It owns the http.Server lifecycle: startup, waiting for SIGINT, SIGTERM or
// SIGQUIT, and graceful shutdown that lets in-flight requests finish.
package server
