package pathutil

// Path is an optional path expression. The zero value is [NoPath], which is
// distinct from a present, empty path.
type Path struct {
	value string
	valid bool
}

// NoPath is the absent [Path].
var NoPath = Path{}

// PathOf returns a present [Path] holding s.
func PathOf(s string) Path {
	return Path{value: s, valid: true}
}

// Get returns the path and whether it is present.
func (p Path) Get() (string, bool) {
	return p.value, p.valid
}

// String returns the path, or the empty string when absent.
func (p Path) String() string {
	return p.value
}
