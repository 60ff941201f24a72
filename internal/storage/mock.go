package storage

type MockStorage struct {
	Chest

	WriteFileErr error
	ReadyErr     error

	Writes int
}

func (m *MockStorage) WriteFile(filename string, contents []byte) error {
	m.Writes++
	if m.WriteFileErr != nil {
		return m.WriteFileErr
	}
	return m.Chest.WriteFile(filename, contents)
}

func (m *MockStorage) Ready() error {
	if m.ReadyErr != nil {
		return m.ReadyErr
	}
	return m.Chest.Ready()
}
