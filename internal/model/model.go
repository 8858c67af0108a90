package model

// Record is implemented by every persisted media kind.
// It is sealed: only types in this package satisfy it.
type Record interface {
	// Kind returns the storage prefix of the record ("images" or "pdfs").
	Kind() string
	record()
}
