package style

import "github.com/xuri/excelize/v2"

// Manager caches excelize styles so each Format is registered only once per file.
type Manager struct {
	file  *excelize.File
	cache map[Format]int
}

// NewManager creates a style manager bound to the given file.
func NewManager(f *excelize.File) *Manager {
	return &Manager{file: f, cache: make(map[Format]int)}
}

// ID returns the style ID for format, creating it on first use.
func (m *Manager) ID(format Format) (int, error) {
	if id, ok := m.cache[format]; ok {
		return id, nil
	}

	id, err := m.file.NewStyle(format.Excelize())
	if err != nil {
		return 0, err
	}

	m.cache[format] = id
	return id, nil
}
