// Copyright (c) 2025 BVK Chaitanya

// Package argtype provides commonly used argument types for command trees.
//
// All types are stateless and safe for concurrent use. Parse failures wrap
// tree.ErrArgumentParse.
package argtype

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bvk/cmdtree/tree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func parseError(token, what string, err error) error {
	if err != nil {
		return fmt.Errorf("%q is not %s: %w: %w", token, what, tree.ErrArgumentParse, err)
	}
	return fmt.Errorf("%q is not %s: %w", token, what, tree.ErrArgumentParse)
}

// Int accepts signed decimal integers and yields int values.
type Int struct{}

func (Int) Parse(token string) (any, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, parseError(token, "an integer", err)
	}
	return v, nil
}

func (Int) Suggestions() []string { return nil }

// IntRange accepts integers within [Min, Max] and yields int values.
type IntRange struct {
	Min, Max int
}

func (r IntRange) Parse(token string) (any, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, parseError(token, "an integer", err)
	}
	if v < r.Min || v > r.Max {
		return nil, parseError(token, fmt.Sprintf("in range [%d, %d]", r.Min, r.Max), nil)
	}
	return v, nil
}

func (r IntRange) Suggestions() []string {
	if r.Max-r.Min >= 10 || r.Max < r.Min {
		return nil
	}
	var vs []string
	for i := r.Min; i <= r.Max; i++ {
		vs = append(vs, strconv.Itoa(i))
	}
	return vs
}

// Float accepts finite floating point numbers and yields float64 values.
type Float struct{}

func (Float) Parse(token string) (any, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, parseError(token, "a number", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, parseError(token, "a finite number", nil)
	}
	return v, nil
}

func (Float) Suggestions() []string { return nil }

// Bool accepts the strconv.ParseBool spellings plus yes/no and on/off.
type Bool struct{}

func (Bool) Parse(token string) (any, error) {
	switch strings.ToLower(token) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	v, err := strconv.ParseBool(token)
	if err != nil {
		return nil, parseError(token, "a boolean", err)
	}
	return v, nil
}

func (Bool) Suggestions() []string {
	return []string{"true", "false"}
}

// Word accepts any token as a string.
type Word struct{}

func (Word) Parse(token string) (any, error) {
	return token, nil
}

func (Word) Suggestions() []string { return nil }

// Enum accepts one of a fixed set of values. Matching ignores case when
// IgnoreCase is set; the yielded value is always the declared spelling.
type Enum struct {
	Values     []string
	IgnoreCase bool
}

func (e Enum) Parse(token string) (any, error) {
	for _, v := range e.Values {
		if v == token || (e.IgnoreCase && strings.EqualFold(v, token)) {
			return v, nil
		}
	}
	return nil, parseError(token, "one of "+strings.Join(e.Values, ", "), nil)
}

func (e Enum) Suggestions() []string {
	return slices.Clone(e.Values)
}

// Pattern accepts tokens that match the regular expression and yields them
// as strings.
type Pattern struct {
	Regexp *regexp.Regexp

	// Hints are returned as suggestions.
	Hints []string
}

func (p Pattern) Parse(token string) (any, error) {
	if !p.Regexp.MatchString(token) {
		return nil, parseError(token, "matching "+p.Regexp.String(), nil)
	}
	return token, nil
}

func (p Pattern) Suggestions() []string {
	return slices.Clone(p.Hints)
}

// Decimal accepts exact decimal numbers and yields decimal.Decimal values.
type Decimal struct{}

func (Decimal) Parse(token string) (any, error) {
	v, err := decimal.NewFromString(token)
	if err != nil {
		return nil, parseError(token, "a decimal", err)
	}
	return v, nil
}

func (Decimal) Suggestions() []string { return nil }

// UUID accepts UUIDs in any format understood by uuid.Parse and yields
// uuid.UUID values.
type UUID struct{}

func (UUID) Parse(token string) (any, error) {
	v, err := uuid.Parse(token)
	if err != nil {
		return nil, parseError(token, "a uuid", err)
	}
	return v, nil
}

func (UUID) Suggestions() []string { return nil }

// Duration accepts time.ParseDuration strings and yields time.Duration
// values.
type Duration struct{}

func (Duration) Parse(token string) (any, error) {
	v, err := time.ParseDuration(token)
	if err != nil {
		return nil, parseError(token, "a duration", err)
	}
	return v, nil
}

func (Duration) Suggestions() []string {
	return []string{"1s", "1m", "1h"}
}

type withSuggestions struct {
	tree.ArgumentType

	hints []string
}

func (w *withSuggestions) Suggestions() []string {
	return slices.Clone(w.hints)
}

// WithSuggestions replaces the suggestions of an argument type.
func WithSuggestions(t tree.ArgumentType, hints ...string) tree.ArgumentType {
	return &withSuggestions{ArgumentType: t, hints: hints}
}
