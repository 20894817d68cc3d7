package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/openrank/compute-relayer/internal/relay"
)

// MemoryStorage is a relay.Storage that lives only as long as the process. Used by dry runs and tests.
type MemoryStorage struct {
	sync.Mutex
	cursor   uint64
	retrySet relay.RetrySet
	failed   map[uint64]relay.FailedSequence
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		retrySet: relay.NewRetrySet(),
		failed:   make(map[uint64]relay.FailedSequence),
	}
}

func (s *MemoryStorage) GetCursor() (uint64, error) {
	s.Lock()
	defer s.Unlock()
	return s.cursor, nil
}

func (s *MemoryStorage) SetCursor(seq uint64) error {
	s.Lock()
	defer s.Unlock()
	if seq < s.cursor {
		return fmt.Errorf("%w: cursor can't move backwards from %d to %d", relay.ErrStorage, s.cursor, seq)
	}
	s.cursor = seq
	return nil
}

// GetRetrySet returns a copy so callers can't mutate the stored set without SetRetrySet
func (s *MemoryStorage) GetRetrySet() (relay.RetrySet, error) {
	s.Lock()
	defer s.Unlock()
	return s.retrySet.Union(nil), nil
}

func (s *MemoryStorage) SetRetrySet(set relay.RetrySet) error {
	s.Lock()
	defer s.Unlock()
	s.retrySet = set.Union(nil)
	return nil
}

func (s *MemoryStorage) SetFailedSequence(info relay.FailedSequence) error {
	s.Lock()
	defer s.Unlock()
	s.failed[info.SeqNumber] = info
	return nil
}

func (s *MemoryStorage) RemoveFailedSequence(seq uint64) error {
	s.Lock()
	defer s.Unlock()
	delete(s.failed, seq)
	return nil
}

func (s *MemoryStorage) GetAllFailedSequences() ([]relay.FailedSequence, error) {
	s.Lock()
	defer s.Unlock()
	out := make([]relay.FailedSequence, 0, len(s.failed))
	for _, info := range s.failed {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeqNumber < out[j].SeqNumber })
	return out, nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
