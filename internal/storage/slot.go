// Package storage holds the single key/value slot the task list lives in.
package storage

import (
	"context"
	"errors"
)

var (
	ErrClosed      = errors.New("storage: slot closed")
	ErrEmptyKey    = errors.New("storage: empty key")
	ErrUnavailable = errors.New("storage: unavailable")
)

// Slot is a persistent key/value area. Put replaces the value wholesale;
// there are no partial updates and no cross-process locking.
type Slot interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
}
