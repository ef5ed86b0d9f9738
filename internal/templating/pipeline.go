// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templating

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-omnisearch/internal/generator"
	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/MKhiriev/go-omnisearch/models"
)

// DateLayout is the text form of generated dates.
const DateLayout = "2006-01-02 15:04"

// Override is a literal key=value pair taking precedence over generated
// values.
type Override struct {
	Key   string
	Value string
}

// ParseOverride splits s at the first "=".
func ParseOverride(s string) (Override, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return Override{}, fmt.Errorf("%w: %q", ErrInvalidOverride, s)
	}
	return Override{Key: key, Value: value}, nil
}

// ParseOverrides parses every element of list with [ParseOverride],
// keeping the order.
func ParseOverrides(list []string) ([]Override, error) {
	overrides := make([]Override, 0, len(list))
	for _, s := range list {
		o, err := ParseOverride(s)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// Request names the inputs of [Pipeline.Build].
type Request struct {
	// GeneratePath is an optional generate spec file.
	GeneratePath string
	Overrides    []Override
	// PropertiesPath is the required properties template.
	PropertiesPath string
	// DataPath is an optional data template. Without it data is {}.
	DataPath string
}

// Pipeline renders templates with generated and overridden values.
type Pipeline struct {
	gen    *generator.Generator
	logger *logger.Logger
}

func NewPipeline(gen *generator.Generator, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{gen: gen, logger: log}
}

// Values builds the placeholder values: the generate spec at generatePath
// (when given) is run first, then overrides are applied in order so a later
// override of the same key wins.
func (p *Pipeline) Values(generatePath string, overrides []Override) (map[string]string, error) {
	values := make(map[string]string)

	if generatePath != "" {
		specs, err := generator.LoadSpecs(generatePath)
		if err != nil {
			return nil, err
		}
		generated, err := p.gen.Dictionary(specs)
		if err != nil {
			return nil, err
		}
		for k, v := range generated {
			values[k] = stringify(v)
		}
	}

	for _, o := range overrides {
		values[o.Key] = o.Value
	}

	p.logger.Info().Interface("values", values).Msg("template values")
	return values, nil
}

// RenderFile reads the template at path, substitutes values and parses the
// result as a JSON object.
func (p *Pipeline) RenderFile(path string, values map[string]string) (models.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading template: %w", err)
	}

	text := Substitute(string(raw), values)

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var doc models.Document
	if err = dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedTemplate, path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s: null document", ErrMalformedTemplate, path)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: %s: trailing data", ErrMalformedTemplate, path)
	}
	return doc, nil
}

// Build renders the properties and data templates of req.
func (p *Pipeline) Build(req Request) (properties, data models.Document, err error) {
	if req.PropertiesPath == "" {
		return nil, nil, fmt.Errorf("%w: properties", ErrMissingTemplate)
	}

	values, err := p.Values(req.GeneratePath, req.Overrides)
	if err != nil {
		return nil, nil, err
	}

	properties, err = p.RenderFile(req.PropertiesPath, values)
	if err != nil {
		return nil, nil, err
	}

	data = models.Document{}
	if req.DataPath != "" {
		data, err = p.RenderFile(req.DataPath, values)
		if err != nil {
			return nil, nil, err
		}
	}
	return properties, data, nil
}

// BuildObjects renders an objects template, keyed by object type.
func (p *Pipeline) BuildObjects(generatePath string, overrides []Override, objectsPath string) (models.Document, error) {
	if objectsPath == "" {
		return nil, fmt.Errorf("%w: objects", ErrMissingTemplate)
	}

	values, err := p.Values(generatePath, overrides)
	if err != nil {
		return nil, err
	}
	return p.RenderFile(objectsPath, values)
}

// stringify renders a generated value as template text.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(DateLayout)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
