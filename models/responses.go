// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the minimal envelope: every body carries a human-readable msg.
// Errors and deletions use it as is.
type Response struct {
	Msg string `json:"msg"`
}

// ItemResponse wraps a single entity under "result".
type ItemResponse[T any] struct {
	Msg    string `json:"msg"`
	Result T      `json:"result"`
}

// ListResponse wraps a collection under "results".
type ListResponse[T any] struct {
	Msg     string `json:"msg"`
	Results []T    `json:"results"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Msg         string `json:"msg"`
	AccessToken string `json:"access_token"`
}

// ProfileResponse describes the caller identified by the bearer token.
type ProfileResponse struct {
	Msg        string `json:"msg"`
	LoggedInAs string `json:"logged_in_as"`
	Result     User   `json:"result"`
}

// BuildInfo is the body of GET /version.
type BuildInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
