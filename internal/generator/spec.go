package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Spec is one entry of a generate spec file.
type Spec struct {
	Type    Kind    `json:"type"`
	Options Options `json:"options"`
}

// Specs maps an output key to the spec producing its value.
type Specs map[string]Spec

// Literal is the value of a spec entry whose type is not a registered kind.
// It renders as the JSON pair [type, options].
type Literal struct {
	Type    string
	Options Options
}

func (l Literal) MarshalJSON() ([]byte, error) {
	opts := l.Options
	if opts == nil {
		opts = Options{}
	}
	return json.Marshal([]any{l.Type, opts})
}

func (l Literal) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("[%q, %v]", l.Type, l.Options)
	}
	return string(b)
}

// LoadSpecs reads a generate spec file. Numbers in options are kept as
// [json.Number].
func LoadSpecs(path string) (Specs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading generate spec: %w", err)
	}
	return ParseSpecs(raw)
}

// ParseSpecs decodes a generate spec document.
func ParseSpecs(raw []byte) (Specs, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var specs Specs
	if err := dec.Decode(&specs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	for key, spec := range specs {
		if spec.Type == "" {
			return nil, fmt.Errorf("%w: %q has no type", ErrInvalidSpec, key)
		}
	}
	return specs, nil
}
