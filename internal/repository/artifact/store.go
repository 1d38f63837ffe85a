// Package artifact persists exported blueprint files (JSON, markdown,
// diagram sources) keyed by blueprint id.
package artifact

import (
	"context"
	"errors"
)

// Store defines operations for persisting blueprint export artifacts.
type Store interface {
	Put(ctx context.Context, blueprintID, path string, content []byte) error
	Get(ctx context.Context, blueprintID, path string) ([]byte, error)
	GetURL(ctx context.Context, blueprintID, path string) (string, error)
	List(ctx context.Context, blueprintID string) ([]string, error)
}

var ErrNotFound = errors.New("artifact not found")
