package store

// Storage is the key-value persistence the store writes through to.
// Get reports ok=false when the key has never been written.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// DefaultKey is the single key holding the serialized collection
const DefaultKey = "todos"
