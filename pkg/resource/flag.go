package resource

import (
	"fmt"
	"strings"
)

// FlagError reports a purge flag literal outside the recognized
// true/false vocabulary.
type FlagError struct {
	Literal any
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("invalid purge_values %v: expected true or false", e.Literal)
}

// ParsePurgeFlag normalizes a declared purge flag. It accepts booleans
// and the case-insensitive strings "true" and "false"; any other literal
// is a *FlagError. Recognized input that is not true normalizes to false.
func ParsePurgeFlag(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, &FlagError{Literal: v}
}
