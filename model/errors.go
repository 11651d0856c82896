package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrMetadataUnreadable = errors.New("metadata unreadable")
	ErrTraversal          = errors.New("traversal failed")
)

// MetadataError reports a path whose metadata could not be resolved.
// Kind is one of the sentinel errors above.
type MetadataError struct {
	Path string
	Kind error
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *MetadataError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
