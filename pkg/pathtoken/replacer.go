package pathtoken

import (
	"strings"
)

// Order is a substitution policy: the tokens a [Replacer] expands, in the
// order they are expanded.
type Order []Token

var (
	// LocationOrder expands the tokens that describe where a path lives.
	// It is applied when combining a reference path with a candidate.
	LocationOrder = Order{Current, Separator}

	// FileOrder expands the tokens that describe which file is requested.
	// It is applied after a path has been located.
	FileOrder = Order{Auto, FileName}
)

// ValueFunc returns the replacement text for a token.
type ValueFunc func() string

// Replacer expands tokens using a substitution table. The zero value expands
// nothing.
type Replacer struct {
	values map[Token]ValueFunc
}

// NewReplacer creates a [Replacer] with an empty substitution table.
func NewReplacer() *Replacer {
	return &Replacer{values: map[Token]ValueFunc{}}
}

// Set binds t to the value returned by fn, replacing any existing binding.
// It returns the receiver so bindings can be chained.
func (r *Replacer) Set(t Token, fn ValueFunc) *Replacer {
	if r.values == nil {
		r.values = map[Token]ValueFunc{}
	}

	r.values[t] = fn

	return r
}

// SetString binds t to a fixed value.
func (r *Replacer) SetString(t Token, v string) *Replacer {
	return r.Set(t, func() string { return v })
}

// Expand replaces every occurrence of each token in order, in sequence, so
// that later tokens see the output of earlier substitutions. Tokens in order
// without a binding are left untouched.
func (r *Replacer) Expand(s string, order Order) string {
	for _, t := range order {
		fn, ok := r.values[t]
		if !ok || !t.In(s) {
			continue
		}

		s = strings.ReplaceAll(s, string(t), fn())
	}

	return s
}
