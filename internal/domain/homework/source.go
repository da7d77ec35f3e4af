// internal/domain/homework/source.go
package homework

import (
	"context"
	"time"
)

// Source fetches the raw decoded status payload for homeworks updated since from.
type Source interface {
	FetchHomeworks(ctx context.Context, from time.Time) (any, error)
}
