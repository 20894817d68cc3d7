package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/openrank/compute-relayer/internal/relay"
)

const (
	CursorKey            = "cursor"
	RetrySetKey          = "retry_set"
	FailedSequencePrefix = "failed_sequences/"
)

// LevelDBStorage keeps the relayer state in a single LevelDB database:
// cursor -> next sequence number to attempt (decimal)
// retry_set -> JSON array of deferred sequence numbers
// failed_sequences/<big endian seq> -> JSON encoded relay.FailedSequence
type LevelDBStorage struct {
	sync.Mutex
	db *leveldb.DB
}

func NewLevelDBStorage(path string) (*LevelDBStorage, error) {
	database, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open leveldb at %s: %s", relay.ErrStorage, path, err)
	}

	return &LevelDBStorage{db: database}, nil
}

// GetCursor returns the next sequence number to attempt
func (s *LevelDBStorage) GetCursor() (uint64, error) {
	s.Lock()
	defer s.Unlock()

	return s.getCursor()
}

func (s *LevelDBStorage) getCursor() (uint64, error) {
	data, err := s.db.Get([]byte(CursorKey), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: failed getting cursor from db: %s", relay.ErrStorage, err)
	}

	res, err := bytesToUint(data)
	if err != nil {
		return 0, fmt.Errorf("%w: failed converting bytes to uint: %s", relay.ErrStorage, err)
	}

	return res, nil
}

// SetCursor stores the cursor, refusing to move it backwards
func (s *LevelDBStorage) SetCursor(seq uint64) error {
	s.Lock()
	defer s.Unlock()

	current, err := s.getCursor()
	if err != nil {
		return err
	}
	if seq < current {
		return fmt.Errorf("%w: cursor can't move backwards from %d to %d", relay.ErrStorage, current, seq)
	}

	err = s.db.Put([]byte(CursorKey), uintToBytes(seq), &opt.WriteOptions{Sync: true})
	if err != nil {
		return fmt.Errorf("%w: failed to set cursor: %s", relay.ErrStorage, err)
	}

	return nil
}

func (s *LevelDBStorage) GetRetrySet() (relay.RetrySet, error) {
	s.Lock()
	defer s.Unlock()

	data, err := s.db.Get([]byte(RetrySetKey), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return relay.NewRetrySet(), nil
		}
		return nil, fmt.Errorf("%w: failed getting retry set from db: %s", relay.ErrStorage, err)
	}

	set := relay.NewRetrySet()
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal retry set: %s", relay.ErrStorage, err)
	}

	return set, nil
}

func (s *LevelDBStorage) SetRetrySet(set relay.RetrySet) error {
	s.Lock()
	defer s.Unlock()

	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal retry set: %s", relay.ErrStorage, err)
	}

	err = s.db.Put([]byte(RetrySetKey), data, &opt.WriteOptions{Sync: true})
	if err != nil {
		return fmt.Errorf("%w: failed to set retry set: %s", relay.ErrStorage, err)
	}

	return nil
}

func (s *LevelDBStorage) SetFailedSequence(info relay.FailedSequence) error {
	s.Lock()
	defer s.Unlock()

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal FailedSequence: %s", relay.ErrStorage, err)
	}

	err = s.db.Put(failedSequenceKey(info.SeqNumber), data, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to set failed sequence %d: %s", relay.ErrStorage, info.SeqNumber, err)
	}

	return nil
}

func (s *LevelDBStorage) RemoveFailedSequence(seq uint64) error {
	s.Lock()
	defer s.Unlock()

	err := s.db.Delete(failedSequenceKey(seq), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to remove failed sequence %d: %s", relay.ErrStorage, seq, err)
	}

	return nil
}

// GetAllFailedSequences returns the failed sequence numbers in ascending order
func (s *LevelDBStorage) GetAllFailedSequences() ([]relay.FailedSequence, error) {
	s.Lock()
	defer s.Unlock()

	iterator := s.db.NewIterator(util.BytesPrefix([]byte(FailedSequencePrefix)), nil)
	defer iterator.Release()
	failed := make([]relay.FailedSequence, 0)
	for iterator.Next() {
		var info relay.FailedSequence
		err := json.Unmarshal(iterator.Value(), &info)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal data into FailedSequence: %s", relay.ErrStorage, err)
		}

		failed = append(failed, info)
	}
	if err := iterator.Error(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate failed sequences: %s", relay.ErrStorage, err)
	}
	return failed, nil
}

func (s *LevelDBStorage) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

func uintToBytes(num uint64) []byte {
	return []byte(strconv.FormatUint(num, 10))
}

func bytesToUint(bytes []byte) (uint64, error) {
	num, err := strconv.ParseUint(string(bytes), 10, 64)
	if err != nil {
		return 0, err
	}

	return num, nil
}

// failedSequenceKey encodes seq big endian so that iteration follows numeric order
func failedSequenceKey(seq uint64) []byte {
	key := make([]byte, len(FailedSequencePrefix)+8)
	copy(key, FailedSequencePrefix)
	binary.BigEndian.PutUint64(key[len(FailedSequencePrefix):], seq)
	return key
}
