package store

import "errors"

// ErrNotFound indicates the requested key has no associated value. It is
// distinct from a present-but-empty value, per the data model's error-kind
// distinction between "not found" and "format error".
var ErrNotFound = errors.New("store: key not found")

// ErrInvalidKey indicates a key that cannot safely be mapped to a path
// under the store root: an empty key, a key containing NUL, or one that
// escapes the root (a leading "..", an absolute path). Path separators
// are allowed and become nested directories.
var ErrInvalidKey = errors.New("store: invalid key")
