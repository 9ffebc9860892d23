package dictionary

import (
	"errors"
	"fmt"
)

// ErrPathNotFound is matched by every *PathNotFoundError via errors.Is.
var ErrPathNotFound = errors.New("dictionary path not found")

// PathNotFoundError is returned when a load target is not a readable directory
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dictionary path not found: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("dictionary path not found: %s", e.Path)
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}
