package ports

// CipherPort defines the interface for the byte-level substitution.
// This allows us to swap the implementation (e.g., from Caesar to a
// different substitution) without changing the stream layer that uses it.
type CipherPort interface {
	// TransformByte maps a single byte to its substituted form. Bytes
	// outside the cipher's alphabet are returned unchanged.
	TransformByte(c byte) byte

	// Transform applies TransformByte to every byte of p in place and
	// returns p.
	Transform(p []byte) []byte
}
