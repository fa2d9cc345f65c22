package querykey

import "strings"

// Separator delimits key segments in the canonical string form.
const Separator = "::"

// Key is an ordered sequence of segments identifying a cached query. The
// first segment is always the resource tag. Keys are immutable values:
// construct them through a Factory, compare them with Equal, and match
// hierarchies with HasPrefix.
type Key struct {
	segments []string
}

// NewKey builds a key from raw segments. Most callers should use a Factory
// instead; NewKey exists for tests and for store adapters that need to
// reconstruct keys from their canonical string form.
func NewKey(segments ...string) Key {
	return Key{segments: append([]string(nil), segments...)}
}

// Segments returns a copy of the key's segments.
func (k Key) Segments() []string {
	return append([]string(nil), k.segments...)
}

// Len returns the number of segments.
func (k Key) Len() int {
	return len(k.segments)
}

// IsZero reports whether the key has no segments.
func (k Key) IsZero() bool {
	return len(k.segments) == 0
}

// String returns the canonical flat form, segments joined by Separator.
// Store adapters index on this form and must use MatchString for prefix
// checks; a bare strings.HasPrefix would match across segment boundaries
// (detail::sp_1 would wrongly cover detail::sp_12).
func (k Key) String() string {
	return strings.Join(k.segments, Separator)
}

// MatchString reports whether the flat form key falls under the flat form
// prefix at a segment boundary. It is the string-level equivalent of
// Key.HasPrefix and is what store adapters use to select entries for
// invalidation.
func MatchString(key, prefix string) bool {
	if key == prefix {
		return true
	}
	return strings.HasPrefix(key, prefix+Separator)
}

// Equal reports whether both keys have identical segments.
func (k Key) Equal(other Key) bool {
	if len(k.segments) != len(other.segments) {
		return false
	}
	for i, s := range k.segments {
		if other.segments[i] != s {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix's segments are a leading subsequence of
// this key's segments. Every key is a prefix of itself.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix.segments) > len(k.segments) {
		return false
	}
	for i, s := range prefix.segments {
		if k.segments[i] != s {
			return false
		}
	}
	return true
}

// append returns a new key with extra segments added; the receiver is not
// modified.
func (k Key) append(segments ...string) Key {
	combined := make([]string, 0, len(k.segments)+len(segments))
	combined = append(combined, k.segments...)
	combined = append(combined, segments...)
	return Key{segments: combined}
}
