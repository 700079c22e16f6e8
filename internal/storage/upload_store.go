package storage

import (
	"errors"
	"sync"
	"time"
)

// UploadRecord tracks one uploaded floor plan file through processing
type UploadRecord struct {
	FileID           string    `json:"file_id"`
	OriginalFilename string    `json:"original_filename"`
	StoredFilename   string    `json:"unique_filename"`
	Path             string    `json:"file_path"`
	Size             int64     `json:"file_size"`
	Status           string    `json:"status"`
	UploadedAt       time.Time `json:"upload_timestamp"`
}

var ErrUploadNotFound = errors.New("upload not found")

// UploadStore keeps upload records in memory. Records live only for the
// lifetime of the process; there is no database behind this service.
type UploadStore struct {
	mu      sync.RWMutex
	records map[string]UploadRecord
}

func NewUploadStore() *UploadStore {
	return &UploadStore{
		records: make(map[string]UploadRecord),
	}
}

// Save stores or replaces a record keyed by its file ID
func (s *UploadStore) Save(record UploadRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.FileID] = record
}

// Get retrieves a record by file ID
func (s *UploadStore) Get(fileID string) (UploadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[fileID]
	if !ok {
		return UploadRecord{}, ErrUploadNotFound
	}
	return record, nil
}
