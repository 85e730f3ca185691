// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

// Package types holds the JSON response envelope shared by the HTTP APIs.
package types

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}

// WriteResponse encodes a standard envelope with the given payload and status.
func WriteResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Data:   data,
		Status: status,
	})
}

// WriteErrorResponse encodes an error envelope with the given message and status.
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Message: message,
		Status:  status,
	})
}
