// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package richtext prepares record objects for upload by rendering their
// portable text content to HTML.
package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-omnisearch/models"
)

const (
	// TypeKey tags an object with its content kind. It is internal to the
	// objects template and never sent to the service.
	TypeKey = "type"
	// ContentKey holds the object content.
	ContentKey = "content"
	// PortableText is the TypeKey value of objects whose content is a
	// portable text block array.
	PortableText = "portable_text"
)

// Convert returns a copy of objects where every portable text object has its
// content rendered to HTML and every object has its type tag removed.
// Nil entries mean "keep the stored content" and are passed through.
// The input is not modified.
func Convert(objects models.Document) (models.Document, error) {
	out := make(models.Document, len(objects))
	for name, value := range objects {
		if value == nil {
			out[name] = nil
			continue
		}

		object, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be an object, got %T", ErrMalformedObject, name, value)
		}

		converted := make(map[string]any, len(object))
		for k, v := range object {
			converted[k] = v
		}

		if converted[TypeKey] == PortableText {
			html, err := renderContent(converted[ContentKey])
			if err != nil {
				return nil, fmt.Errorf("object %q: %w", name, err)
			}
			converted[ContentKey] = html
		}
		delete(converted, TypeKey)

		out[name] = converted
	}
	return out, nil
}

// renderContent accepts the block array either as JSON text or already
// decoded.
func renderContent(content any) (string, error) {
	var raw []byte
	switch c := content.(type) {
	case string:
		raw = []byte(c)
	case []any:
		b, err := json.Marshal(c)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrMalformedContent, err)
		}
		raw = b
	default:
		return "", fmt.Errorf("%w: content must be a JSON array, got %T", ErrMalformedContent, content)
	}

	var blocks []Block
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&blocks); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedContent, err)
	}
	return Render(blocks)
}
