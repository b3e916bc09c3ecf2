package blob

import "errors"

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrBucketNotFound = errors.New("bucket not found")
	ErrStorageError   = errors.New("storage error")
)
