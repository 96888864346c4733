package regpath

import "fmt"

// SyntaxError reports a registry path that does not match the grammar.
// Fragment is the offending substring (or the whole input when the shape
// of the string itself is wrong) so callers can surface actionable
// messages without re-deriving context.
type SyntaxError struct {
	Fragment string
	Reason   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid registry path %q: %s", e.Fragment, e.Reason)
}

func syntaxErr(fragment, reason string) *SyntaxError {
	return &SyntaxError{Fragment: fragment, Reason: reason}
}
