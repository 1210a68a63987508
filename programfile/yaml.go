// SPDX-License-Identifier: MIT

package programfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Programs []yamlProgram `yaml:"programs"`
}

type yamlProgram struct {
	ID          *int        `yaml:"id"`
	Name        string      `yaml:"name"`
	Objective   []float64   `yaml:"objective"`
	Constraints [][]float64 `yaml:"constraints"`
}

// ReadYAML parses a YAML document with a top-level "programs" list.
// An empty document yields no definitions.
func ReadYAML(r io.Reader) ([]Definition, error) {
	var doc yamlFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	defs := make([]Definition, 0, len(doc.Programs))
	for i, p := range doc.Programs {
		d, err := p.definition()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		defs = append(defs, d)
	}
	if err := checkUnique(defs); err != nil {
		return nil, err
	}

	return defs, nil
}

func (p yamlProgram) definition() (Definition, error) {
	if p.ID == nil {
		return Definition{}, fmt.Errorf("%w: missing id", ErrMalformed)
	}
	if len(p.Objective) != 2 {
		return Definition{}, fmt.Errorf("%w: objective wants 2 numbers, got %d", ErrMalformed, len(p.Objective))
	}

	d := Definition{
		ID:          *p.ID,
		Name:        p.Name,
		Objective:   [2]float64{p.Objective[0], p.Objective[1]},
		Constraints: make([][3]float64, 0, len(p.Constraints)),
	}
	for j, c := range p.Constraints {
		if len(c) != 3 {
			return Definition{}, fmt.Errorf("%w: constraint %d wants 3 numbers, got %d", ErrMalformed, j, len(c))
		}
		d.Constraints = append(d.Constraints, [3]float64{c[0], c[1], c[2]})
	}

	return d, nil
}
