package domain

import (
	"errors"
	"strconv"
)

// AlphabetSize is the number of letters in the Latin alphabet the cipher
// rotates over.
const AlphabetSize = 26

// Mode is a custom type for the two cipher directions.
type Mode string

const (
	ModeEncrypt Mode = "encrypt"
	ModeDecrypt Mode = "decrypt"
)

// Key parsing errors. Each one maps to a distinct usage error at the CLI.
var (
	ErrKeyNotInteger = errors.New("key is not a base 10 integer")
	ErrKeyOutOfRange = errors.New("key does not fit in a signed integer")
	ErrKeyNegative   = errors.New("key must not be negative")
)

// ParseKey parses a shift key from its command-line form. The key must be
// a non-negative base 10 integer that fits in the platform's signed
// integer range.
func ParseKey(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrKeyOutOfRange
		}
		return 0, ErrKeyNotInteger
	}
	if n < 0 {
		return 0, ErrKeyNegative
	}
	return int(n), nil
}

// EffectiveShift converts a parsed key into the signed shift fed to the
// cipher: the key itself for encryption, its negation for decryption.
func EffectiveShift(mode Mode, key int) int {
	if mode == ModeDecrypt {
		return -key
	}
	return key
}

// NormalizeShift reduces any shift, positive or negative, into [0, 26).
func NormalizeShift(s int) int {
	return ((s % AlphabetSize) + AlphabetSize) % AlphabetSize
}
