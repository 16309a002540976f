package ports

import (
	"context"
	"io"
)

// StreamPort defines the interface for applying a cipher across an input
// source, byte for byte and in order.
type StreamPort interface {
	// ApplyMessage transforms an already-materialized message and writes
	// the result to w. The input slice is not modified.
	ApplyMessage(msg []byte, w io.Writer) error

	// ApplyStream consumes r until end-of-stream, writing each
	// transformed chunk to w before reading the next. Memory use is
	// bounded regardless of input length.
	ApplyStream(ctx context.Context, r io.Reader, w io.Writer) error
}
