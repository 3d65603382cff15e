// Package pathutil resolves token-parametrized path expressions into absolute
// paths, and provides existence, type and modification-time checks on top of
// the resolved paths.
//
// Path expressions may contain the tokens defined in
// [github.com/MacroPower/filemonitor/pkg/pathtoken]. Relative expressions are
// resolved against the base directory of a [Resolver], which is supplied at
// construction rather than read from the environment.
package pathutil
