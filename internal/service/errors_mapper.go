// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-omnisearch/internal/adapter"
)

// mapTransportError translates a transport error into a service error. The
// original error stays in the chain, so the result still matches
// adapter.ErrRemoteCallFailed.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var callErr *adapter.RemoteCallError
	if !errors.As(err, &callErr) {
		return err
	}

	switch callErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return err
}
