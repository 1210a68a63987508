// SPDX-License-Identifier: MIT

package programfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText parses the "!<id> [name]" section format.
//
// Complexity: O(size of input).
func ReadText(r io.Reader) ([]Definition, error) {
	var (
		defs   []Definition
		cur    *Definition
		hasObj bool
		lineNo int
	)

	closeSection := func() error {
		if cur == nil {
			return nil
		}
		if !hasObj {
			return fmt.Errorf("%w: program %d has no objective", ErrMalformed, cur.ID)
		}
		defs = append(defs, *cur)

		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "!") {
			if err := closeSection(); err != nil {
				return nil, err
			}
			d, err := parseHeader(line[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cur, hasObj = &d, false
			continue
		}

		if cur == nil {
			return nil, fmt.Errorf("line %d: %w: data before the first !<id> header", lineNo, ErrMalformed)
		}
		want := 3
		if !hasObj {
			want = 2
		}
		vals, err := parseFloats(line, want)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !hasObj {
			cur.Objective = [2]float64{vals[0], vals[1]}
			hasObj = true
		} else {
			cur.Constraints = append(cur.Constraints, [3]float64{vals[0], vals[1], vals[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("programfile: %w", err)
	}
	if err := closeSection(); err != nil {
		return nil, err
	}
	if err := checkUnique(defs); err != nil {
		return nil, err
	}

	return defs, nil
}

// parseHeader parses "<id> [name]" (the text after '!').
func parseHeader(s string) (Definition, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Definition{}, fmt.Errorf("%w: header without id", ErrMalformed)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Definition{}, fmt.Errorf("%w: header id %q", ErrMalformed, fields[0])
	}

	return Definition{ID: id, Name: strings.Join(fields[1:], " ")}, nil
}

// parseFloats splits a data line into exactly want numbers.
func parseFloats(line string, want int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", ErrMalformed, want, len(fields))
	}
	out := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformed, f)
		}
		out[i] = v
	}

	return out, nil
}
