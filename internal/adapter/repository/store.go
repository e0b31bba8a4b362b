package repository

import (
	"context"
	"errors"
)

// ErrNoRecord is returned by a Store when nothing has been saved yet.
var ErrNoRecord = errors.New("no stored record")

// Store is a single-slot durable byte store. Write overwrites whatever the
// slot held before.
type Store interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
