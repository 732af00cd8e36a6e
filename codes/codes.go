// Package codes parses and validates the numeric door codes fed to the
// relay engine: strings over '0'–'9' terminated by the activate symbol,
// one per input line.
package codes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Alphabet: decimal digits plus the activate symbol.
const activate = 'A'

// Sentinel errors for code parsing.
var (
	// ErrEmptyCode indicates an empty code.
	ErrEmptyCode = errors.New("codes: code must be non-empty")
	// ErrBadCharacter indicates a character outside the code alphabet.
	ErrBadCharacter = errors.New("codes: character outside code alphabet")
	// ErrMissingActivate indicates a code not terminated by the activate symbol.
	ErrMissingActivate = errors.New("codes: code must end with the activate symbol")
	// ErrRead wraps an underlying reader failure.
	ErrRead = errors.New("codes: reading input failed")
)

// Code is a validated door code such as "029A": one or more characters from
// {'0'–'9', 'A'}, always activate-terminated.
type Code string

// Parse validates a single input line as a Code.
func Parse(line string) (Code, error) {
	if line == "" {
		return "", ErrEmptyCode
	}
	for i, r := range line {
		if (r < '0' || r > '9') && r != activate {
			return "", fmt.Errorf("%w: %q at position %d", ErrBadCharacter, r, i)
		}
	}
	if !strings.HasSuffix(line, string(activate)) {
		return "", fmt.Errorf("%w: %q", ErrMissingActivate, line)
	}
	return Code(line), nil
}

// ParseAll reads one code per line from r, skipping blank lines. The first
// malformed line fails the whole read; no partial result is returned.
func ParseAll(r io.Reader) ([]Code, error) {
	var out []Code
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return out, nil
}

// NumericValue interprets the code's digit characters as a decimal integer,
// ignoring the activate symbol: "029A" → 29. A code with no digits is 0.
func (c Code) NumericValue() int {
	n := 0
	for _, r := range c {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}
