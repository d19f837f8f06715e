package logdata

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const readAttempts = 3

// readLines reads a chat log. The game keeps the current log open for
// writing, so transient read failures are retried a few times.
func readLines(ctx context.Context, path string) ([]string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond

	text, err := backoff.Retry(ctx, func() (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return "", backoff.Permanent(err)
			}
			return "", err
		}
		return string(data), nil
	}, backoff.WithBackOff(b), backoff.WithMaxTries(readAttempts))
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}
