// Copyright (c) 2025 BVK Chaitanya

package tree

import (
	"fmt"
	"strings"
)

// Tokenizer splits command strings at a fixed separator. Runs of the
// separator are treated as a single boundary and leading or trailing runs
// are ignored.
type Tokenizer struct {
	sep string
}

// NewTokenizer returns a tokenizer for the separator. Empty separator is a
// configuration error.
func NewTokenizer(sep string) (*Tokenizer, error) {
	if len(sep) == 0 {
		return nil, fmt.Errorf("separator cannot be empty: %w", ErrConfiguration)
	}
	return &Tokenizer{sep: sep}, nil
}

func (t *Tokenizer) Separator() string {
	return t.sep
}

// Trim removes the leading run of separators.
func (t *Tokenizer) Trim(s string) string {
	for strings.HasPrefix(s, t.sep) {
		s = s[len(t.sep):]
	}
	return s
}

// Next returns the next token and the unconsumed suffix that follows the
// token's terminating separator. Returns false when only separators or
// nothing remains, which is not an error.
func (t *Tokenizer) Next(s string) (token, rest string, ok bool) {
	s = t.Trim(s)
	if len(s) == 0 {
		return "", "", false
	}
	if i := strings.Index(s, t.sep); i >= 0 {
		return s[:i], s[i+len(t.sep):], true
	}
	return s, "", true
}

// Split returns all tokens in the input.
func (t *Tokenizer) Split(s string) []string {
	var tokens []string
	for token, rest, ok := t.Next(s); ok; token, rest, ok = t.Next(rest) {
		tokens = append(tokens, token)
	}
	return tokens
}
