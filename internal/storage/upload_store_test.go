package storage_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"floorplan-compliance-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStoreSaveAndGet(t *testing.T) {
	t.Parallel()

	store := storage.NewUploadStore()
	record := storage.UploadRecord{
		FileID:           "abc123",
		OriginalFilename: "plan.png",
		StoredFilename:   "abc123.png",
		Path:             "/tmp/abc123.png",
		Size:             2048,
		Status:           "completed",
		UploadedAt:       time.Now(),
	}

	store.Save(record)

	got, err := store.Get("abc123")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestUploadStoreGetMissing(t *testing.T) {
	t.Parallel()

	store := storage.NewUploadStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, storage.ErrUploadNotFound)
}

func TestUploadStoreOverwrite(t *testing.T) {
	t.Parallel()

	store := storage.NewUploadStore()
	store.Save(storage.UploadRecord{FileID: "abc123", Status: "processing"})
	store.Save(storage.UploadRecord{FileID: "abc123", Status: "completed"})

	got, err := store.Get("abc123")
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
}

func TestUploadStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := storage.NewUploadStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("file_%d", n)
			store.Save(storage.UploadRecord{FileID: id, Status: "completed"})
			_, _ = store.Get(id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		_, err := store.Get(fmt.Sprintf("file_%d", i))
		assert.NoError(t, err)
	}
}
