package storage

// Memory is a map-backed KV for tests and throwaway runs. It satisfies the
// same contract as the SQLite store but nothing survives the process.
type Memory struct {
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.data, key)
	return nil
}
