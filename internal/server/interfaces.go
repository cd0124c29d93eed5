// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown stops accepting connections and waits for active requests.
type Server interface {
	RunServer()

	Shutdown()
}
