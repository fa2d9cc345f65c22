package querykey

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{"single segment", NewKey("shipping_profile"), "shipping_profile"},
		{"two segments", NewKey("shipping_profile", "list"), "shipping_profile::list"},
		{"detail with id", NewKey("store", "detail", "st_1"), "store::detail::st_1"},
		{"empty key", NewKey(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKeyEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Key
		equal bool
	}{
		{"identical", NewKey("a", "b"), NewKey("a", "b"), true},
		{"different length", NewKey("a"), NewKey("a", "b"), false},
		{"different segment", NewKey("a", "b"), NewKey("a", "c"), false},
		{"both empty", NewKey(), NewKey(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			// Equality is symmetric
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("reverse Equal() = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestKeyHasPrefix(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		prefix  Key
		matches bool
	}{
		{"self prefix", NewKey("a", "b"), NewKey("a", "b"), true},
		{"strict prefix", NewKey("a", "b", "c"), NewKey("a", "b"), true},
		{"root prefix", NewKey("a", "b", "c"), NewKey("a"), true},
		{"longer than key", NewKey("a"), NewKey("a", "b"), false},
		{"diverging segment", NewKey("a", "b"), NewKey("a", "c"), false},
		{"empty prefix matches all", NewKey("a"), NewKey(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.HasPrefix(tt.prefix); got != tt.matches {
				t.Errorf("HasPrefix() = %v, want %v", got, tt.matches)
			}
		})
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		prefix  string
		matches bool
	}{
		{"exact", "sp::detail::sp_1", "sp::detail::sp_1", true},
		{"segment boundary", "sp::detail::sp_1::opts", "sp::detail::sp_1", true},
		{"no cross-boundary match", "sp::detail::sp_12", "sp::detail::sp_1", false},
		{"lists prefix", "sp::list::{Limit=10}", "sp::list", true},
		{"different resource", "store::list", "sp::list", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchString(tt.key, tt.prefix); got != tt.matches {
				t.Errorf("MatchString(%q, %q) = %v, want %v", tt.key, tt.prefix, got, tt.matches)
			}
		})
	}
}

// MatchString and Key.HasPrefix must agree for keys built from segments.
func TestMatchStringAgreesWithHasPrefix(t *testing.T) {
	keys := []Key{
		NewKey("sp"),
		NewKey("sp", "list"),
		NewKey("sp", "list", "{Limit=10}"),
		NewKey("sp", "detail", "sp_1"),
		NewKey("sp", "detail", "sp_12"),
	}

	for _, key := range keys {
		for _, prefix := range keys {
			want := key.HasPrefix(prefix)
			got := MatchString(key.String(), prefix.String())
			if got != want {
				t.Errorf("key %q prefix %q: MatchString = %v, HasPrefix = %v",
					key, prefix, got, want)
			}
		}
	}
}
