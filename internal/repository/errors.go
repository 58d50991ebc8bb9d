package repository

import "errors"

// ErrNotFound is returned by mutations that matched no row, either because
// the row does not exist or because it sits outside the caller's scope.
// The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("record not found")
