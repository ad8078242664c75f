package storage

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrExists     = errors.New("record already exists")
	ErrReferenced = errors.New("record is referenced by another record")
)
