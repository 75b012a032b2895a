// Copyright (c) 2025 BVK Chaitanya

package tree

import "fmt"

// DefaultSeparator splits command strings into tokens when no other
// separator is configured.
const DefaultSeparator = " "

type Options struct {
	// Separator holds the token delimiter. Runs of the separator collapse into
	// one boundary. Empty value picks the DefaultSeparator.
	Separator string

	// CaseSensitive when true disables case folding on the nodes created by a
	// Builder. Individual specs can still override it.
	CaseSensitive bool
}

func (v *Options) setDefaults() {
	if len(v.Separator) == 0 {
		v.Separator = DefaultSeparator
	}
}

func (v *Options) Check() error {
	if len(v.Separator) == 0 {
		return fmt.Errorf("separator cannot be empty: %w", ErrConfiguration)
	}
	return nil
}

// withDefaults returns a copy of the input options with defaults filled in.
// Nil input is treated as zero options.
func withDefaults(opts *Options) (*Options, error) {
	v := new(Options)
	if opts != nil {
		*v = *opts
	}
	v.setDefaults()
	if err := v.Check(); err != nil {
		return nil, err
	}
	return v, nil
}
