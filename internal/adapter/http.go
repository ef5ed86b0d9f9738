// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/MKhiriev/go-omnisearch/internal/utils"
	"github.com/MKhiriev/go-omnisearch/models"
)

// Config enumerates everything the HTTP transport needs to reach the API.
type Config struct {
	// Host is the API root, e.g. "https://acme.omnisearch.ai/api". A single
	// trailing slash is stripped.
	Host string
	// Version is the API version path segment, e.g. "v1".
	Version string
	// Key is sent as the "key" query parameter on every request.
	Key string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
}

type httpTransport struct {
	client *utils.HTTPClient

	host    string
	version string
	key     string

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty-based implementation of [Transport].
// The underlying client, and with it the connection pool, is owned by the
// returned transport for its whole lifetime.
//
// Returns [ErrEmptyHost] (wrapped) if cfg.Host is blank.
func NewHTTPTransport(cfg Config, log *logger.Logger) (Transport, error) {
	host := strings.TrimSuffix(strings.TrimSpace(cfg.Host), "/")
	if host == "" {
		return nil, fmt.Errorf("invalid transport config: %w", ErrEmptyHost)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(log)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &httpTransport{
		client:  client,
		host:    host,
		version: cfg.Version,
		key:     cfg.Key,
		logger:  log,
	}, nil
}

// Request implements [Transport].
func (t *httpTransport) Request(ctx context.Context, method, path string, body any, params models.Params) (any, error) {
	query := params.Clone()
	query["key"] = t.key

	payload, err := encodeBody(body)
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, Err: fmt.Errorf("encode body: %w", err)}
	}

	fullURL, err := MergeURL(t.host+"/"+t.version+path, query)
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, Err: err}
	}

	t.logger.Info().Str("method", method).Msg(fullURL)

	req := t.client.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, Err: err}
	}
	if err = mapHTTPError(method, path, resp); err != nil {
		return nil, err
	}

	result, err := decodeBody(resp.Body())
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return result, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(b)
	}
}

// decodeBody parses a JSON response. An empty body decodes to nil.
func decodeBody(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
