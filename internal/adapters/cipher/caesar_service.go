package cipher

import (
	"caesar/internal/core/domain"
	"caesar/internal/core/ports"

	"github.com/rs/zerolog"
)

// caesarService implements the CipherPort interface with a classical
// Caesar shift over the 26-letter Latin alphabet.
type caesarService struct {
	shift int // normalized into [0, 26)
	log   zerolog.Logger
}

var _ ports.CipherPort = (*caesarService)(nil)

// NewCaesarService creates a cipher for the given shift. Any integer is
// accepted; decryption is simply a negative shift.
func NewCaesarService(shift int, baseLogger *zerolog.Logger) ports.CipherPort {
	log := baseLogger.With().Str("component", "caesar_cipher").Logger()

	normalized := domain.NormalizeShift(shift)
	log.Debug().Int("shift", shift).Int("normalized", normalized).Msg("Cipher initialized")

	return &caesarService{shift: normalized, log: log}
}

// TransformByte shifts a single byte. Uppercase and lowercase letters
// rotate within their own alphabet; every other byte is returned as-is.
func (s *caesarService) TransformByte(c byte) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return s.rotate('A', c)
	case c >= 'a' && c <= 'z':
		return s.rotate('a', c)
	}
	return c
}

// Transform shifts every byte of p in place and returns p.
func (s *caesarService) Transform(p []byte) []byte {
	for i := range p {
		p[i] = s.TransformByte(p[i])
	}
	return p
}

func (s *caesarService) rotate(base, c byte) byte {
	offset := (int(c-base) + s.shift) % domain.AlphabetSize
	return base + byte(offset)
}
