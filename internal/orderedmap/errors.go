package orderedmap

import "errors"

var (
	// ErrInvalidKey indicates a write with the zero (empty) key.
	ErrInvalidKey = errors.New("orderedmap: invalid key")
	// ErrKeyNotFound indicates a lookup or removal of an absent key.
	ErrKeyNotFound = errors.New("orderedmap: key not found")
)
