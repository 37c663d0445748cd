package item

import (
	"strings"
)

const (
	// Separators are all characters recognized as path delimiters within an evaluated include.
	// Project files may mix both forms within a single path.
	Separators = `/\`

	DirSeparator = "/"
)

// Path is a possibly-relative item path as it appears in a project item list.
type Path string

// Segments splits the path on all recognized separators, discarding empty segments (so doubled,
// leading, and trailing separators never produce empty parts).
func (p Path) Segments() []string {
	var segments []string
	for _, part := range strings.FieldsFunc(string(p), isSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Basename is the leaf name of the path: the final segment, or "" when the path has none.
func (p Path) Basename() string {
	segments := p.Segments()
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// Key is the case-folded comparison form of the path, used for all map keys and identity
// comparisons.
func (p Path) Key() string {
	return Fold(strings.TrimSpace(string(p)))
}

// IsAbsolute indicates the path does not need rooting: it either begins with a separator or
// carries a volume prefix (e.g. "C:").
func (p Path) IsAbsolute() bool {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return false
	}
	if isSeparator(rune(s[0])) {
		return true
	}
	return len(s) >= 2 && s[1] == ':' && isASCIILetter(s[0])
}

// Clean rewrites the path with all separators normalized to "/" and empty segments removed,
// preserving a leading separator.
func (p Path) Clean() Path {
	joined := strings.Join(p.Segments(), DirSeparator)
	s := strings.TrimSpace(string(p))
	if s != "" && isSeparator(rune(s[0])) {
		return Path(DirSeparator + joined)
	}
	return Path(joined)
}

// Fold returns the case-insensitive comparison form of a path segment.
func Fold(s string) string {
	return strings.ToLower(s)
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(Separators, r)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
