// SPDX-License-Identifier: MIT

// Package programfile reads linear program definitions from files.
//
// Two formats are supported:
//
// Text, one or more sections headed by "!<id> [name]":
//
//	# maximize 2x + y
//	!1 slanted corner
//	2 1        # objective: a b
//	1 0 1.8    # constraint a·x + b·y ≤ c
//	-1 3 0
//
// Blank lines and everything after '#' are ignored. Content before the
// first header is malformed.
//
// YAML (gopkg.in/yaml.v3), for files ending in .yaml or .yml:
//
//	programs:
//	  - id: 1
//	    name: slanted corner
//	    objective: [2, 1]
//	    constraints:
//	      - [1, 0, 1.8]
//	      - [-1, 3, 0]
//
// Readers only check the shape of the data; coefficient values are checked
// when Definition.Program builds the LP.
package programfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/planelp/program"
)

// Sentinel errors. Readers wrap them with line or entry context.
var (
	// ErrMalformed indicates input that does not follow the file format.
	ErrMalformed = errors.New("programfile: malformed input")

	// ErrProgramNotFound indicates that no definition carries the requested id.
	ErrProgramNotFound = errors.New("programfile: program not found")

	// ErrDuplicateID indicates two definitions with the same id in one file.
	ErrDuplicateID = errors.New("programfile: duplicate program id")
)

// Definition is one program as written in a file.
type Definition struct {
	ID          int          `json:"id" yaml:"id"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Objective   [2]float64   `json:"objective" yaml:"objective"`
	Constraints [][3]float64 `json:"constraints" yaml:"constraints"`
}

// Program builds the linear program described by d.
func (d Definition) Program(opts ...program.Option) (*program.LinearProgram, error) {
	p, err := program.FromCoefficients(d.Objective, d.Constraints, opts...)
	if err != nil {
		return nil, fmt.Errorf("programfile: program %d: %w", d.ID, err)
	}

	return p, nil
}

// Label renders "<id>" or "<id> (<name>)".
func (d Definition) Label() string {
	if d.Name == "" {
		return fmt.Sprint(d.ID)
	}

	return fmt.Sprintf("%d (%s)", d.ID, d.Name)
}

// Load reads every definition in the file at path, picking the format by
// extension.
func Load(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("programfile: %w", err)
	}
	defer f.Close()

	var defs []Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		defs, err = ReadYAML(f)
	default:
		defs, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return defs, nil
}

// Find returns the definition with the given id.
func Find(defs []Definition, id int) (Definition, error) {
	for _, d := range defs {
		if d.ID == id {
			return d, nil
		}
	}

	return Definition{}, fmt.Errorf("%w: %d", ErrProgramNotFound, id)
}

// checkUnique rejects repeated ids.
func checkUnique(defs []Definition) error {
	seen := make(map[int]struct{}, len(defs))
	for _, d := range defs {
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = struct{}{}
	}

	return nil
}
