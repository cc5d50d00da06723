package extract

import (
	"context"
	"errors"
)

// ErrNotStaged means the staged upload was not found in the cache, either
// expired or never written.
var ErrNotStaged = errors.New("staged file not found")

// TextExtractor turns a staged upload into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, fileKey string) (string, error)
}
