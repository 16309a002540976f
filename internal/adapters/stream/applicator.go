package stream

import (
	"context"
	"fmt"
	"io"

	"caesar/internal/core/ports"

	"github.com/rs/zerolog"
)

// DefaultBufferSize is the chunk size used when the caller does not
// configure one.
const DefaultBufferSize = 32 * 1024

// applicator implements the StreamPort interface. It pushes every byte of
// a source through a CipherPort and into a sink, preserving order and
// count, without ever holding more than one chunk in memory.
type applicator struct {
	cipher  ports.CipherPort
	bufSize int
	log     zerolog.Logger
}

var _ ports.StreamPort = (*applicator)(nil)

// NewApplicator creates a stream applicator for the given cipher.
// A non-positive bufSize falls back to DefaultBufferSize.
func NewApplicator(cipher ports.CipherPort, bufSize int, baseLogger *zerolog.Logger) ports.StreamPort {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}

	log := baseLogger.With().Str("component", "stream_applicator").Logger()
	log.Debug().Int("buffer_size", bufSize).Msg("Applicator initialized")

	return &applicator{cipher: cipher, bufSize: bufSize, log: log}
}

// ApplyMessage transforms a finite, already-materialized message and
// writes the result to w. The caller's slice is left untouched.
func (a *applicator) ApplyMessage(msg []byte, w io.Writer) error {
	out := a.cipher.Transform(append([]byte(nil), msg...))
	if _, err := w.Write(out); err != nil {
		a.log.Error().Err(err).Msg("Failed to write transformed message")
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}

// ApplyStream copies r to w through the cipher until end-of-stream. Each
// chunk is transformed in place and written before the next read, so
// arbitrarily large input runs in constant memory.
func (a *applicator) ApplyStream(ctx context.Context, r io.Reader, w io.Writer) error {
	buf := make([]byte, a.bufSize)
	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(a.cipher.Transform(buf[:n])); werr != nil {
				a.log.Error().Err(werr).Msg("Failed to write transformed chunk")
				return fmt.Errorf("could not write output: %w", werr)
			}
			total += int64(n)
		}
		if err == io.EOF {
			a.log.Debug().Int64("bytes", total).Msg("Stream fully transformed")
			return nil
		}
		if err != nil {
			a.log.Error().Err(err).Msg("Failed to read input")
			return fmt.Errorf("could not read input: %w", err)
		}
	}
}
