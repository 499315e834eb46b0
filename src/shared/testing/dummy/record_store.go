package dummy

import (
	"context"
	"sync"

	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	splitstorage "github.com/veedubyou/track-splitter/src/shared/split/storage"
)

var _ splitstorage.Store = &RecordStore{}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		Unavailable: false,
		State:       make(map[string]splitstorage.SeparationRecord),
	}
}

type RecordStore struct {
	Unavailable bool
	State       map[string]splitstorage.SeparationRecord
	mutex       sync.RWMutex
}

func (r *RecordStore) PutRecord(_ context.Context, record splitstorage.SeparationRecord) error {
	if r.Unavailable {
		return NetworkFailure
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.State[record.ID] = record
	return nil
}

func (r *RecordStore) GetRecord(_ context.Context, id string) (splitstorage.SeparationRecord, error) {
	if r.Unavailable {
		return splitstorage.SeparationRecord{}, NetworkFailure
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	record, ok := r.State[id]
	if !ok {
		return splitstorage.SeparationRecord{}, mark.Wrap(NotFound, splitstorage.RecordNotFoundMark, "No record for ID")
	}

	return record, nil
}

func (r *RecordStore) Records() []splitstorage.SeparationRecord {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	records := make([]splitstorage.SeparationRecord, 0, len(r.State))
	for _, record := range r.State {
		records = append(records, record)
	}

	return records
}
