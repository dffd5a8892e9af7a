package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"time"
)

const MaxRetries = 3

// IsRetryable reports whether a read failure may clear up on its own. Editors
// that save by rename briefly leave the source path missing.
func IsRetryable(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * 50 * time.Millisecond
	if base > time.Second {
		base = time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

func readWithRetry(ctx context.Context, path string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		data, err := os.ReadFile(path)
		if err == nil || !IsRetryable(err) || attempt >= MaxRetries {
			return data, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(Backoff(attempt)):
		}
	}
}
