// Copyright (c) 2025 BVK Chaitanya

package tree

// ArgumentType validates and converts a single token. Implementations must
// be free of side effects because the parser tries argument types
// speculatively, in declaration order, until one accepts the token.
type ArgumentType interface {
	// Parse converts the token into a value. Errors should wrap
	// ErrArgumentParse, but any non-nil error rejects the token.
	Parse(token string) (any, error)

	// Suggestions returns canned completion hints. Empty result means no
	// hints; a placeholder built from the argument name is shown instead.
	Suggestions() []string
}
