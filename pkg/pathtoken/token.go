// Package pathtoken defines the placeholder tokens that may appear in path
// expressions, and the ordered substitution policies used to expand them.
//
// A path expression is a plain string that may contain any of the tokens
// below. Tokens are expanded by a [Replacer], which applies a fixed list of
// token substitutions in order, so that the order of expansion is an explicit
// value rather than an accident of call order.
package pathtoken

import (
	"strings"
)

// Token is a placeholder marker embedded in a path expression.
type Token string

const (
	// Auto resolves to the base directory. When it is the entire path
	// expression, the requested file name is appended to it.
	Auto Token = "[Auto]"

	// Current resolves to the current reference directory.
	Current Token = "[RutaActual]"

	// Separator resolves to the host directory separator.
	Separator Token = "[DS]"

	// FileName resolves to the requested file name.
	FileName Token = "[FileName]"
)

// String returns the literal form of the token.
func (t Token) String() string {
	return string(t)
}

// In reports whether the token occurs anywhere in s.
func (t Token) In(s string) bool {
	return strings.Contains(s, string(t))
}

// Is reports whether the trimmed s consists of exactly the token, ignoring
// case.
func (t Token) Is(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), string(t))
}
