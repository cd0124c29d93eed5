// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the blog.
//
// It wires the chi router, the request handlers for users, characters,
// planets, favorites and authentication, and the middleware chain (trace id,
// access log, metrics, gzip, bearer auth). Handlers decode request bodies,
// delegate to the service layer and translate errors into JSON envelopes
// with the matching HTTP status.
package http
