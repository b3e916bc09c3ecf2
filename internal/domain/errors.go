package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration      = errors.New("target bucket name is not set")
	ErrUnidentifiedFormat = errors.New("unable to identify image format")
	ErrResourceExhaustion = errors.New("image exceeds resource limits")
	ErrNoRecords          = errors.New("event contains no records")
)

// ProcessingError wraps any failure that is not one of the distinguished
// kinds above with the object it happened on.
type ProcessingError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("error processing object %s from bucket %s: %v", e.Key, e.Bucket, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
