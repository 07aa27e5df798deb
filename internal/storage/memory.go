package storage

// Memory keeps values in a map for the lifetime of the process
type Memory struct {
	data map[string]string
}

// NewMemory creates an empty in-memory backend
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value stored under key
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key
func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
