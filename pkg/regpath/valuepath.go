package regpath

import "strings"

// ValuePath addresses a registry value: a key plus a value name. The
// empty name addresses the key's unnamed (default) value.
type ValuePath struct {
	key  KeyPath
	name string
}

// NewValuePath pairs a key with a value name.
func NewValuePath(k KeyPath, valueName string) ValuePath {
	return ValuePath{key: k, name: valueName}
}

// ParseValuePath parses a combined key+value path. The string splits at
// the final separator: the prefix is the key, the remainder the value
// name. A trailing separator, or a bare hive token, addresses the key's
// default value.
func ParseValuePath(raw string) (ValuePath, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ValuePath{}, syntaxErr(raw, "empty path")
	}

	if strings.HasSuffix(s, Separator) {
		k, err := Parse(s)
		if err != nil {
			return ValuePath{}, err
		}
		return ValuePath{key: k}, nil
	}

	i := strings.LastIndex(s, Separator)
	if i < 0 {
		// Bare hive: the root key's default value.
		k, err := Parse(s)
		if err != nil {
			return ValuePath{}, err
		}
		return ValuePath{key: k}, nil
	}

	k, err := Parse(s[:i])
	if err != nil {
		return ValuePath{}, err
	}
	return ValuePath{key: k, name: s[i+1:]}, nil
}

// Compose is the inverse of ParseValuePath. An empty value name composes
// with a trailing separator so the result round-trips back to the same
// key and the default value.
func Compose(k KeyPath, valueName string) string {
	return k.Canonical() + Separator + valueName
}

// Key returns the owning key path.
func (v ValuePath) Key() KeyPath { return v.key }

// ValueName returns the case-preserved value name; empty for the default
// value.
func (v ValuePath) ValueName() string { return v.name }

// IsDefault reports whether the path addresses the key's unnamed value.
func (v ValuePath) IsDefault() bool { return v.name == "" }

// String returns the combined canonical form.
func (v ValuePath) String() string { return Compose(v.key, v.name) }

// Alias returns the case-folded combined form, the value's identity in
// the case-insensitive namespace.
func (v ValuePath) Alias() string { return Fold(v.String()) }
