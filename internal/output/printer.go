// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package output prints API payloads as JSON or YAML.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Printer writes payloads to w in one format.
type Printer struct {
	w      io.Writer
	format string
	colour bool
	styles jsonStyles
}

// NewPrinter returns a Printer for format. An empty format means JSON.
// Colour applies to JSON output only.
func NewPrinter(w io.Writer, format string, colour bool) *Printer {
	if format == "" {
		format = FormatJSON
	}
	p := &Printer{w: w, format: strings.ToLower(format), colour: colour}
	if colour {
		p.styles = newJSONStyles(w)
	}
	return p
}

// Print writes v followed by a newline. A nil payload prints nothing.
func (p *Printer) Print(v any) error {
	if v == nil {
		return nil
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(v)
	case FormatYAML:
		return p.printYAML(v)
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}

func (p *Printer) printJSON(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding json output: %w", err)
	}

	text := buf.String()
	if p.colour {
		coloured, err := colourize(text, p.styles)
		if err != nil {
			return err
		}
		text = coloured
	}
	_, err := io.WriteString(p.w, text)
	return err
}

func (p *Printer) printYAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(v)); err != nil {
		return fmt.Errorf("error encoding yaml output: %w", err)
	}
	return enc.Close()
}

// normalize converts json.Number values to Go numbers so YAML prints them
// unquoted.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}
