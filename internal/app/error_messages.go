// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// OmniSearch command-line client.
//
// All Msg* constants are human-readable messages logged when a command fails,
// naming the API endpoint the command was calling. Keeping them in one place
// ensures consistent wording across commands.
package app

const (
	// MsgErrorCallingHello is logged when GET /hello fails.
	MsgErrorCallingHello = "Error calling /hello"

	// MsgErrorCallingLanguages is logged when GET /languages fails.
	MsgErrorCallingLanguages = "Error calling /languages"

	// MsgErrorCallingRecords is logged when listing or creating records fails.
	MsgErrorCallingRecords = "Error calling /records"

	// MsgErrorCallingRecord is logged when reading, updating or deleting a
	// single record fails.
	MsgErrorCallingRecord = "Error calling /record/{uid}"

	// MsgErrorCallingRecordObjects is logged when a call on the objects of a
	// record fails.
	MsgErrorCallingRecordObjects = "Error calling /record/{uid}/objects"

	// MsgErrorCallingRecordObject is logged when a call on one object type of
	// a record fails.
	MsgErrorCallingRecordObject = "Error calling /records/{uid}/objects/{type}"

	// MsgErrorCallingRecordContent is logged when fetching object content
	// fails.
	MsgErrorCallingRecordContent = "Error calling /records/{uid}/objects/{type}/content"

	// MsgErrorCallingRecordTranscript is logged when fetching an object
	// transcript fails.
	MsgErrorCallingRecordTranscript = "Error calling /records/{uid}/objects/{type}/transcript"

	// MsgErrorCallingSchema is logged when GET /schema/{record_type} fails.
	MsgErrorCallingSchema = "Error calling /schema/{record_type}"

	// MsgErrorCallingSearch is logged when GET /search/{record_type} fails.
	MsgErrorCallingSearch = "Error calling /search/{record_type}"

	// MsgErrorPreparingRequest is logged when templates or generated values
	// cannot be turned into a request body.
	MsgErrorPreparingRequest = "Error preparing request"

	// MsgErrorGettingConfigs is logged when the configuration cannot be
	// loaded or is invalid.
	MsgErrorGettingConfigs = "error getting configs"
)
