package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
)

func loadReader(ctx context.Context, r io.Reader, maxBytes int64) ([]byte, error) {
	if r == nil {
		return nil, errors.New("reader is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return readAll(r, maxBytes)
}

// readAll reads r fully, failing when more than maxBytes are available.
func readAll(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("payload exceeds %d bytes", maxBytes)
	}
	return data, nil
}
