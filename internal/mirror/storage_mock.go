package mirror

import (
	"context"
	"sync"
)

type MockStorage struct {
	Err error

	mu            sync.Mutex
	savedFilename string
	savedContents []byte
}

func newMockStorage() *MockStorage {
	// default values for metrics
	saveBackupErrors.With("type", "mock", "id", "mock").Add(0)
	savedBackupsCounter.With("type", "mock", "id", "mock").Add(0)

	return &MockStorage{}
}

func (s *MockStorage) Close() error {
	return s.Err
}

func (s *MockStorage) SaveFile(_ context.Context, filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		saveBackupErrors.With("type", "mock", "id", "mock").Add(1)
	} else {
		savedBackupsCounter.With("type", "mock", "id", "mock").Add(1)

		s.savedFilename = filename
		s.savedContents = data
	}
	return s.Err
}

// Saved returns the most recently saved filename and contents.
func (s *MockStorage) Saved() (string, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.savedFilename, s.savedContents
}
