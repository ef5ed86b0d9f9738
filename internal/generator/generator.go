// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces fake values from a single randomness source.
// It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// New returns a Generator seeded with seed. A zero seed picks a random one.
func New(seed int64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// Generate runs the producer registered for kind.
func (g *Generator) Generate(kind Kind, opts Options) (any, error) {
	produce, ok := producers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, kind)
	}
	if opts == nil {
		opts = Options{}
	}
	return produce(g, opts)
}

// Dictionary generates one value per entry of specs. Entries are visited in
// key order so a seeded Generator always yields the same dictionary.
//
// An entry whose kind is not registered yields a [Literal] carrying the
// entry unchanged.
func (g *Generator) Dictionary(specs Specs) (map[string]any, error) {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make(map[string]any, len(specs))
	for _, key := range keys {
		spec := specs[key]
		if !spec.Type.IsValid() {
			result[key] = Literal{Type: string(spec.Type), Options: spec.Options}
			continue
		}

		value, err := g.Generate(spec.Type, spec.Options)
		if err != nil {
			return nil, fmt.Errorf("generate %q: %w", key, err)
		}
		result[key] = value
	}
	return result, nil
}

// PickOne returns one of values chosen uniformly.
func (g *Generator) PickOne(values []any) (any, error) {
	if len(values) == 0 {
		return nil, ErrNoCandidates
	}
	return values[g.faker.Rand.Intn(len(values))], nil
}

// PickMany draws a count uniformly from [minimum, maximum), makes that many
// independent draws from values with replacement and returns the distinct
// draws, in the order first drawn, as JSON array text.
//
// The count is chosen before duplicates are removed, so the result may hold
// fewer than count elements.
func (g *Generator) PickMany(values []any, minimum, maximum int) (string, error) {
	if len(values) == 0 {
		return "", ErrNoCandidates
	}
	if minimum < 0 || maximum <= minimum {
		return "", fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, minimum, maximum)
	}

	count := minimum + g.faker.Rand.Intn(maximum-minimum)

	seen := make(map[string]struct{}, count)
	picked := make([]any, 0, count)
	for range count {
		v := values[g.faker.Rand.Intn(len(values))]

		key, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("%w: candidate %v: %w", ErrInvalidOption, v, err)
		}
		if _, dup := seen[string(key)]; dup {
			continue
		}
		seen[string(key)] = struct{}{}
		picked = append(picked, v)
	}

	out, err := json.Marshal(picked)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
