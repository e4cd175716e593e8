package repository

import "errors"

// ErrNotFound is returned (wrapped) when a key or row does not exist.
var ErrNotFound = errors.New("not found")
