package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/shelfcheck/backend/internal/domain"
)

// FileStore persists verification records as one JSON document per line in
// an append-only file. Appends are serialized under a mutex so parallel
// reconciliation workers can share one sink; this store is what lets the
// batch driver and the presentation server run as separate processes over
// the same data.
type FileStore struct {
	mutex sync.Mutex
	path  string
}

// NewFileStore creates a record store backed by the given JSONL file.
// The file is created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append serializes one record and appends it to the file.
func (s *FileStore) Append(ctx context.Context, record domain.VerificationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", record.ID, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("appending record %q: %w", record.ID, err)
	}
	return nil
}

// List reads every record from the file in append order. A missing file is
// an empty store, not an error.
func (s *FileStore) List(ctx context.Context) ([]domain.VerificationRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening record store: %w", err)
	}
	defer f.Close()

	var records []domain.VerificationRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record domain.VerificationRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("decoding record store line: %w", err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading record store: %w", err)
	}

	return records, nil
}

// Get returns the record with the given ID. When an ID was appended more
// than once the latest record wins.
func (s *FileStore) Get(ctx context.Context, id string) (domain.VerificationRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return domain.VerificationRecord{}, err
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].ID == id {
			return records[i], nil
		}
	}
	return domain.VerificationRecord{}, domain.ErrRecordNotFound
}
