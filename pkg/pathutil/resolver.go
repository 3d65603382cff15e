package pathutil

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
	"github.com/MacroPower/filemonitor/pkg/pathtoken"
)

const (
	separator    = string(filepath.Separator)
	defaultPerm  = fs.FileMode(0o755)
	currentAlias = "."
)

// Resolver expands token-parametrized path expressions into absolute paths,
// and answers existence and modification-time questions about them.
//
// Relative expressions are resolved against a base directory that is fixed
// at construction. A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	fs      afero.Fs
	baseDir string
	perm    fs.FileMode
	tokens  *pathtoken.Replacer
}

// ResolverOption configures a [Resolver].
type ResolverOption func(*Resolver)

// WithFs sets the filesystem used for existence checks, metadata lookups and
// directory creation. Defaults to the host filesystem.
func WithFs(fsys afero.Fs) ResolverOption {
	return func(r *Resolver) {
		r.fs = fsys
	}
}

// WithDirPerm sets the permission bits used by [Resolver.PrepareDirectory].
func WithDirPerm(perm fs.FileMode) ResolverOption {
	return func(r *Resolver) {
		r.perm = perm
	}
}

// NewResolver creates a [Resolver] for the given base directory. If baseDir is
// relative, it is made absolute using the current working directory.
func NewResolver(baseDir string, opts ...ResolverOption) (*Resolver, error) {
	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		fs:      afero.NewOsFs(),
		baseDir: absBaseDir,
		perm:    defaultPerm,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.tokens = pathtoken.NewReplacer().
		SetString(pathtoken.Current, r.baseDir).
		SetString(pathtoken.Separator, separator)

	return r, nil
}

// BaseDir returns the absolute base directory.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Fs returns the filesystem the resolver operates on.
func (r *Resolver) Fs() afero.Fs {
	return r.fs
}

// ResolveAbsoluteFrom combines reference and candidate into a single path.
//
// If both are present, a reference with a file extension is replaced by its
// directory, [pathtoken.Current] tokens in candidate are treated as ".", and
// the two are combined (an absolute candidate replaces the reference). The
// remaining tokens are then expanded and the result is cleaned and made
// absolute against the base directory.
//
// If only one of them is present, that one is returned with its tokens
// expanded but is otherwise left untouched. An absent reference is replaced
// by the base directory unless candidate refers to [pathtoken.Current]
// itself. Both absent yields [NoPath].
func (r *Resolver) ResolveAbsoluteFrom(reference, candidate Path) Path {
	ref, hasRef := reference.Get()
	cand, hasCand := candidate.Get()

	if hasRef && hasCand && hasExtension(ref) {
		ref = filepath.Dir(ref)
	}

	if hasRef && hasCand && pathtoken.Current.In(cand) {
		cand = strings.ReplaceAll(cand, pathtoken.Current.String(), currentAlias)
	}

	if !hasRef && hasCand && !pathtoken.Current.In(cand) {
		ref, hasRef = r.baseDir, true
	}

	var result Path

	switch {
	case !hasCand:
		result = Path{value: ref, valid: hasRef}
	case !hasRef:
		result = PathOf(cand)
	default:
		combined := r.tokens.Expand(combine(ref, cand), pathtoken.LocationOrder)

		return PathOf(r.canonicalize(combined))
	}

	if s, ok := result.Get(); ok {
		return PathOf(r.tokens.Expand(s, pathtoken.LocationOrder))
	}

	return NoPath
}

// ResolveAbsolute resolves candidate against the base directory.
func (r *Resolver) ResolveAbsolute(candidate string) string {
	return r.ResolveAbsoluteFrom(r.Reference(), PathOf(candidate)).String()
}

// ResolveFilePath resolves pathExpr and expands [pathtoken.Auto] and
// [pathtoken.FileName] in it. When pathExpr consists of [pathtoken.Auto]
// alone, fileName is appended to the base directory. Trailing separators are
// removed from the result. A blank pathExpr fails with [fmerrors.ErrEmptyPath].
func (r *Resolver) ResolveFilePath(pathExpr, fileName string) (string, error) {
	if strings.TrimSpace(pathExpr) == "" {
		return "", fmerrors.ErrEmptyPath
	}

	if pathtoken.Auto.Is(pathExpr) {
		ref, _ := r.Reference().Get()

		return trimTrailingSeparators(ref + fileName), nil
	}

	resolved := pathtoken.NewReplacer().
		SetString(pathtoken.Auto, r.baseDir).
		SetString(pathtoken.FileName, fileName).
		Expand(r.ResolveAbsolute(pathExpr), pathtoken.FileOrder)

	return trimTrailingSeparators(resolved), nil
}

// Reference returns the base directory in the form used as a reference
// path. The trailing separator keeps a dotted directory name from being
// mistaken for a file.
func (r *Resolver) Reference() Path {
	if strings.HasSuffix(r.baseDir, separator) {
		return PathOf(r.baseDir)
	}

	return PathOf(r.baseDir + separator)
}

func (r *Resolver) canonicalize(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}

	return filepath.Clean(path)
}

// combine appends candidate to reference without cleaning, so that tokens
// are still intact for expansion. An absolute candidate wins.
func combine(reference, candidate string) string {
	switch {
	case filepath.IsAbs(candidate), reference == "":
		return candidate
	case candidate == "":
		return reference
	case strings.HasSuffix(reference, separator), strings.HasSuffix(reference, "/"):
		return reference + candidate
	default:
		return reference + separator + candidate
	}
}

// hasExtension reports whether the last element of path has a non-empty
// extension. A bare trailing dot is not an extension.
func hasExtension(path string) bool {
	return len(filepath.Ext(path)) > 1
}

// trimTrailingSeparators removes trailing separators, keeping the root of an
// absolute path intact.
func trimTrailingSeparators(path string) string {
	minLen := len(filepath.VolumeName(path)) + 1
	for len(path) > minLen && strings.HasSuffix(path, separator) {
		path = path[:len(path)-1]
	}

	return path
}
