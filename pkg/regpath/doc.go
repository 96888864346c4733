/*
Package regpath models Windows registry key and value paths as structured,
comparable values.

A registry path string such as

	32:HKLM\Software\Vendor\App

is parsed into a KeyPath holding the hive (HKLM or HKCR), the optional
32-bit redirection marker, and the case-preserved path segments. The
canonical string form normalizes the hive token and bit-width prefix while
keeping the caller's segment casing; the alias form is the fully
case-folded canonical string and is the identity under which two
declarations of the same location compare equal, registry namespaces being
case-insensitive but case-preserving.

ValuePath pairs a KeyPath with a value name. The empty value name denotes
the key's unnamed (default) value, spelled with a trailing backslash in
string form.

All functions in this package are pure; parse failures are reported as
*SyntaxError carrying the offending fragment.
*/
package regpath
