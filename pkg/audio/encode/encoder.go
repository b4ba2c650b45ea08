// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all audio encoders
package encode

// Encoder encodes float samples to a byte format
type Encoder interface {
	// Encode converts samples in [-1, 1] to encoded audio data
	Encode(samples []float64) ([]byte, error)

	// BytesPerSample returns the encoded size of one sample
	BytesPerSample() int

	// Close releases encoder resources
	Close() error
}
