// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the OmniSearch service facade: one method per
// remote operation, each shaping its domain arguments into a
// [adapter.Transport] request.
//
// Every method returns (payload, error). On failure the payload is always
// nil and the error is classified so callers can tell the cases apart with
// errors.Is: [ErrNotFound], [ErrValidation], [ErrNotModified],
// [ErrNotDeleted] or, for anything else, [ErrRemoteCallFailed]. Errors that
// originate in the transport also keep matching [adapter.ErrRemoteCallFailed].
// Successful payloads are returned exactly as decoded from the response.
package service

import (
	"context"

	"github.com/MKhiriev/go-omnisearch/models"
)

// OmniSearchService is the facade over the OmniSearch REST API.
type OmniSearchService interface {
	// Hello calls GET /hello. Transport errors are returned unchanged.
	Hello(ctx context.Context) (any, error)

	// Languages calls GET /languages. Transport errors are returned unchanged.
	Languages(ctx context.Context) (any, error)

	// Records lists records of q.RecordType via GET /records. Pagination
	// is zero-based and defaults to page 0 of size 10.
	Records(ctx context.Context, q models.ListQuery) (any, error)

	// CreateRecord creates a record via POST /records. The body is
	// {type, name, properties, data, hidden}.
	CreateRecord(ctx context.Context, record models.Record) (any, error)

	// Record fetches one record via GET /records/{uid}. A missing record
	// yields [ErrNotFound].
	Record(ctx context.Context, recordID string) (any, error)

	// UpdateRecord updates a record via PATCH /records/{uid}. A response
	// without a truthy "modified" field yields [ErrNotModified].
	UpdateRecord(ctx context.Context, recordID string, record models.Record) (any, error)

	// DeleteRecord deletes a record via DELETE /records/{uid}. A response
	// whose "message" is anything but "record deleted" (in any letter case)
	// yields [ErrNotDeleted].
	DeleteRecord(ctx context.Context, recordID string) (any, error)

	// RecordObjects lists the objects of a record via
	// GET /records/{uid}/objects.
	RecordObjects(ctx context.Context, recordID string) (any, error)

	// CreateRecordObjects replaces the objects of a record via
	// POST /records/{uid}/objects with body {objects}.
	//
	// The service removes object types missing from objects and keeps the
	// current content of types whose value is nil; see [models.Objects].
	CreateRecordObjects(ctx context.Context, recordID string, objects models.Objects) (any, error)

	// DeleteRecordObjects removes every object of a record via
	// DELETE /records/{uid}/objects.
	DeleteRecordObjects(ctx context.Context, recordID string) (any, error)

	// RecordObject fetches one object via GET /records/{uid}/objects/{type}.
	RecordObject(ctx context.Context, recordID, objectType string) (any, error)

	// UpdateRecordObject replaces one object via
	// PUT /records/{uid}/objects/{type}; object is sent as the body.
	UpdateRecordObject(ctx context.Context, recordID, objectType string, object any) (any, error)

	// DeleteRecordObject removes one object via
	// DELETE /records/{uid}/objects/{type}.
	DeleteRecordObject(ctx context.Context, recordID, objectType string) (any, error)

	// RecordContent fetches the extracted content of one object via
	// GET /records/{uid}/objects/{type}/content.
	RecordContent(ctx context.Context, recordID, objectType string) (any, error)

	// RecordTranscript fetches the transcript of one media object via
	// GET /records/{uid}/objects/{type}/transcript.
	RecordTranscript(ctx context.Context, recordID, objectType string) (any, error)

	// Schema returns property values and counts of the records matching q
	// via GET /schema/{record_type}.
	Schema(ctx context.Context, q models.SchemaQuery) (any, error)

	// Search runs a search via GET /search/{record_type}, or
	// GET /search/{record_type}/detailed when q.Detailed is set. Pagination
	// starts at page 1 and defaults to size 10.
	Search(ctx context.Context, q models.SearchQuery) (any, error)
}

// OmniSearchServiceWrapper defines middleware composition for
// OmniSearchService. Implementations wrap an existing OmniSearchService to
// add behavior such as validation.
type OmniSearchServiceWrapper interface {
	Wrap(OmniSearchService) OmniSearchService // returns a decorated OmniSearchService applying additional behavior
}
