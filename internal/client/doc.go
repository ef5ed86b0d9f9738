// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the omnisearch command-line application.
//
// It wires configuration, logging, the HTTP transport, the service facade,
// the template pipeline and the output printer into a cobra command tree,
// one command per API operation.
package client
