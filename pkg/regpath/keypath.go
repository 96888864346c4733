package regpath

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Separator is the registry path separator.
const Separator = `\`

// Hive identifies one of the supported registry roots.
type Hive int

const (
	// LocalMachine is HKEY_LOCAL_MACHINE.
	LocalMachine Hive = iota
	// ClassesRoot is HKEY_CLASSES_ROOT.
	ClassesRoot
)

// String returns the normalized short token used in canonical paths.
func (h Hive) String() string {
	switch h {
	case LocalMachine:
		return "HKLM"
	case ClassesRoot:
		return "HKCR"
	}
	return "HKLM"
}

// BitWidth selects the registry view on 64-bit systems.
type BitWidth int

const (
	// Native is the default view; a 64: prefix parses to Native as well,
	// since only 32-bit redirection needs a distinguishing marker.
	Native BitWidth = iota
	// ThirtyTwo selects the 32-bit redirected view (32: prefix).
	ThirtyTwo
)

func (w BitWidth) String() string {
	if w == ThirtyTwo {
		return "32-bit"
	}
	return "native"
}

// prefix is the canonical spelling of the bit-width marker.
func (w BitWidth) prefix() string {
	if w == ThirtyTwo {
		return "32:"
	}
	return ""
}

var hiveTokens = map[string]Hive{
	"HKLM":               LocalMachine,
	"HKEY_LOCAL_MACHINE": LocalMachine,
	"HKCR":               ClassesRoot,
	"HKEY_CLASSES_ROOT":  ClassesRoot,
}

// Predefined Windows roots this model does not manage. Recognized only to
// give a pointed error instead of a generic unknown-hive one.
var unsupportedRoots = map[string]struct{}{
	"HKCU":                  {},
	"HKEY_CURRENT_USER":     {},
	"HKU":                   {},
	"HKEY_USERS":            {},
	"HKCC":                  {},
	"HKEY_CURRENT_CONFIG":   {},
	"HKEY_PERFORMANCE_DATA": {},
}

// KeyPath is an immutable registry key location: hive, bit-width view, and
// case-preserved path segments. The zero value is the native HKLM root.
type KeyPath struct {
	hive     Hive
	width    BitWidth
	segments []string
}

// New builds a KeyPath from already-split segments. Every segment must be
// non-empty and free of the separator.
func New(hive Hive, width BitWidth, segments ...string) (KeyPath, error) {
	for _, seg := range segments {
		if seg == "" {
			return KeyPath{}, syntaxErr(strings.Join(segments, Separator), "empty path segment")
		}
		if strings.Contains(seg, Separator) {
			return KeyPath{}, syntaxErr(seg, "segment contains a path separator")
		}
	}
	return KeyPath{hive: hive, width: width, segments: slices.Clone(segments)}, nil
}

// Parse parses a raw registry key path of the form
// [32:|64:]<hive>[\segment...]. It returns a *SyntaxError for any input
// that does not match the grammar.
func Parse(raw string) (KeyPath, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return KeyPath{}, syntaxErr(raw, "empty path")
	}

	width := Native
	rest := s
	// A colon ahead of the first separator can only be a bit-width marker;
	// hive tokens never contain one.
	if i := strings.IndexByte(s, ':'); i >= 0 && !strings.Contains(s[:i], Separator) {
		switch s[:i] {
		case "32":
			width = ThirtyTwo
		case "64":
			// explicit native view
		default:
			return KeyPath{}, syntaxErr(s[:i+1], "bit-width prefix must be 32: or 64:")
		}
		rest = s[i+1:]
	}

	rest = strings.TrimRight(rest, Separator)
	parts := strings.Split(rest, Separator)

	token := parts[0]
	if token == "" {
		return KeyPath{}, syntaxErr(s, "missing registry hive")
	}
	hive, ok := hiveTokens[strings.ToUpper(token)]
	if !ok {
		if _, predefined := unsupportedRoots[strings.ToUpper(token)]; predefined {
			return KeyPath{}, syntaxErr(token, "unsupported predefined root; use HKLM or HKCR")
		}
		return KeyPath{}, syntaxErr(token, "unknown registry hive; use HKLM or HKCR")
	}

	segments := parts[1:]
	for _, seg := range segments {
		if seg == "" {
			return KeyPath{}, syntaxErr(s, "empty path segment")
		}
	}
	return KeyPath{hive: hive, width: width, segments: slices.Clone(segments)}, nil
}

// Valid reports whether raw matches the key path grammar. It never panics
// and never returns an error.
func Valid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Hive returns the key's registry root.
func (k KeyPath) Hive() Hive { return k.hive }

// BitWidth returns the registry view the key addresses.
func (k KeyPath) BitWidth() BitWidth { return k.width }

// Segments returns a copy of the case-preserved path segments. Empty for
// a hive root.
func (k KeyPath) Segments() []string { return slices.Clone(k.segments) }

// IsRoot reports whether the key is a bare hive root.
func (k KeyPath) IsRoot() bool { return len(k.segments) == 0 }

// Canonical returns the normalized string form: bit-width prefix (only
// for the 32-bit view), short hive token, and the original-case segments
// joined by single separators.
func (k KeyPath) Canonical() string {
	var b strings.Builder
	b.WriteString(k.width.prefix())
	b.WriteString(k.hive.String())
	for _, seg := range k.segments {
		b.WriteString(Separator)
		b.WriteString(seg)
	}
	return b.String()
}

func (k KeyPath) String() string { return k.Canonical() }

// Alias returns the fully case-folded canonical form. It is the key's
// identity in the case-insensitive namespace and is never shown to users.
func (k KeyPath) Alias() string { return Fold(k.Canonical()) }

// Equal reports exact equality, casing included.
func (k KeyPath) Equal(other KeyPath) bool {
	return k.hive == other.hive && k.width == other.width &&
		slices.Equal(k.segments, other.segments)
}

// SameLocation reports whether two keys denote the same underlying
// registry location, which holds iff their folded canonical forms match.
func (k KeyPath) SameLocation(other KeyPath) bool {
	return k.Alias() == other.Alias()
}

// Parent returns the immediate parent key. ok is false for a hive root.
func (k KeyPath) Parent() (parent KeyPath, ok bool) {
	if len(k.segments) == 0 {
		return KeyPath{}, false
	}
	return KeyPath{
		hive:     k.hive,
		width:    k.width,
		segments: slices.Clone(k.segments[:len(k.segments)-1]),
	}, true
}

// Ascend returns the chain of ancestor keys, nearest parent first, ending
// at the hive root. A key with n segments yields exactly n ancestors; the
// key itself is never included. Hive and bit width are preserved.
func (k KeyPath) Ascend() []KeyPath {
	chain := make([]KeyPath, 0, len(k.segments))
	for i := len(k.segments) - 1; i >= 0; i-- {
		chain = append(chain, KeyPath{
			hive:     k.hive,
			width:    k.width,
			segments: slices.Clone(k.segments[:i]),
		})
	}
	return chain
}

// Fold case-folds s for identity comparison in the case-insensitive,
// case-preserving registry namespace.
func Fold(s string) string {
	return cases.Fold().String(s)
}
