package dummy

import (
	"context"
	"sync"

	"github.com/veedubyou/track-splitter/src/shared/cloud_storage/store"
)

var _ store.FileStore = &FileStore{}

func NewFileStore() *FileStore {
	return &FileStore{
		Unavailable: false,
		Files:       make(map[string][]byte),
	}
}

type FileStore struct {
	Unavailable bool
	Files       map[string][]byte
	mutex       sync.RWMutex
}

func (f *FileStore) GetFile(_ context.Context, fileURL string) ([]byte, error) {
	if f.Unavailable {
		return nil, NetworkFailure
	}

	f.mutex.RLock()
	defer f.mutex.RUnlock()

	content, ok := f.Files[fileURL]
	if !ok {
		return nil, NotFound
	}

	return content, nil
}

func (f *FileStore) WriteFile(_ context.Context, fileURL string, fileContent []byte) error {
	if f.Unavailable {
		return NetworkFailure
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.Files[fileURL] = fileContent
	return nil
}
