package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptData marks a stored blob that could not be decoded.
	ErrCorruptData = errors.New("stored data is corrupted")
)

// OpError describes a failed storage operation on a named key.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapBlobErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Key: key, Err: err}
}
