// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the
// OmniSearch REST API.
//
// The primary abstraction is [Transport], which decouples the service layer
// from HTTP details. The package ships a resty-based implementation
// ([NewHTTPTransport]) together with the parameter sanitizer ([CleanParams],
// [EncodeParams], [MergeURL]) that turns a parameter mapping into the
// canonical query string sent to the service.
//
// Every failure is reported as an error matching [ErrRemoteCallFailed];
// callers that need the HTTP status use [errors.As] with *[RemoteCallError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-omnisearch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport sends one request to the OmniSearch API and returns the decoded
// JSON response.
type Transport interface {
	// Request dispatches method to {host}/{version}{path}.
	//
	// The API key is added to params as "key" on every call, even when params
	// is nil; params itself is never mutated. A body of type string, []byte or
	// json.RawMessage is sent verbatim, a nil body sends nothing, and any
	// other value is encoded as JSON.
	//
	// On HTTP 200 the decoded body is returned (numbers as json.Number). Any
	// other status, a network failure, or an undecodable body yields an error
	// matching [ErrRemoteCallFailed]. Requests are never retried.
	Request(ctx context.Context, method, path string, body any, params models.Params) (any, error)
}
