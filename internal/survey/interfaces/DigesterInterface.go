package interfaces

// DigesterInterface is the narrow one-way hash contract the anonymizer and
// key deriver are built on, so the algorithm can be swapped without touching
// callers. Implementations must be deterministic and unkeyed.
type DigesterInterface interface {
	Digest(data []byte) []byte
}
