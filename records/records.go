// Package records holds the date-bucketed record collections. The in-memory
// state is authoritative for the current run; every mutation is applied
// synchronously and the affected bucket is persisted in the background.
package records

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
)

// Record is any domain record with a stable identifier.
type Record interface {
	RecordID() string
}

// Outcome reports whether a mutation located its target record.
type Outcome int

const (
	Found Outcome = iota
	NotFound
)

// Persister is the durable storage collaborator. Write failures degrade
// durability only and must never affect in-memory state.
type Persister interface {
	PutBucketBlob(collection, dateKey string, blob []byte) error
	DeleteBucketBlob(collection, dateKey string) error
	LoadCollection(collection string) (map[string][]byte, error)
	ClearCollection(collection string) error
}

// Store is a collection of records keyed by their owning YYYY-MM-DD date.
// Records within a bucket keep insertion order.
type Store[T Record] struct {
	mu         sync.Mutex
	buckets    map[string][]T
	collection string
	writer     *writer
}

// NewStore loads a collection from durable storage. Buckets that fail to
// decode are skipped so that one corrupt blob does not take down the rest of
// the collection.
func NewStore[T Record](collection string, db Persister) (*Store[T], error) {
	blobs, err := db.LoadCollection(collection)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]T, len(blobs))

	for dateKey, blob := range blobs {
		var recs []T

		if err := json.Unmarshal(blob, &recs); err != nil {
			slog.Error(
				"skipping undecodable bucket",
				slog.String("collection", collection),
				slog.String("date", dateKey),
				slog.Any("error", err),
			)

			continue
		}

		if len(recs) > 0 {
			buckets[dateKey] = recs
		}
	}

	return &Store[T]{
		buckets:    buckets,
		collection: collection,
		writer:     newWriter(collection, db),
	}, nil
}

// Insert appends a record to the bucket for dateKey, creating the bucket if
// absent. It always succeeds; uniqueness is not enforced across buckets.
func (s *Store[T]) Insert(dateKey string, rec T) {
	s.mu.Lock()
	s.buckets[dateKey] = append(s.buckets[dateKey], rec)
	blob := s.marshalBucket(dateKey)
	s.mu.Unlock()

	s.writer.enqueue(writeOp{dateKey: dateKey, blob: blob})
}

// Update applies a patch to the record with the given id inside the bucket
// for dateKey. It reports NotFound when the bucket or record does not exist.
func (s *Store[T]) Update(dateKey, id string, patch func(*T)) Outcome {
	s.mu.Lock()

	bucket, ok := s.buckets[dateKey]
	if !ok {
		s.mu.Unlock()
		return NotFound
	}

	idx := indexOf(bucket, id)
	if idx < 0 {
		s.mu.Unlock()
		return NotFound
	}

	patch(&bucket[idx])
	blob := s.marshalBucket(dateKey)
	s.mu.Unlock()

	s.writer.enqueue(writeOp{dateKey: dateKey, blob: blob})

	return Found
}

// Delete removes the record with the given id from the bucket for dateKey.
// It reports NotFound when the bucket or record does not exist.
func (s *Store[T]) Delete(dateKey, id string) Outcome {
	s.mu.Lock()

	bucket, ok := s.buckets[dateKey]
	if !ok {
		s.mu.Unlock()
		return NotFound
	}

	idx := indexOf(bucket, id)
	if idx < 0 {
		s.mu.Unlock()
		return NotFound
	}

	bucket = append(bucket[:idx], bucket[idx+1:]...)

	var op writeOp

	if len(bucket) == 0 {
		delete(s.buckets, dateKey)
		op = writeOp{dateKey: dateKey, remove: true}
	} else {
		s.buckets[dateKey] = bucket
		op = writeOp{dateKey: dateKey, blob: s.marshalBucket(dateKey)}
	}

	s.mu.Unlock()

	s.writer.enqueue(op)

	return Found
}

// GetByDate returns a copy of the bucket for dateKey, or an empty slice if
// no such bucket exists.
func (s *Store[T]) GetByDate(dateKey string) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[dateKey]
	out := make([]T, len(bucket))
	copy(out, bucket)

	return out
}

// GetByDateRange returns all records whose date key falls within the
// inclusive range, in date-ascending order with insertion order preserved
// within each date.
func (s *Store[T]) GetByDateRange(startKey, endKey string) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.buckets))

	for k := range s.buckets {
		// YYYY-MM-DD keys compare correctly as strings
		if k >= startKey && k <= endKey {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	var out []T

	for _, k := range keys {
		out = append(out, s.buckets[k]...)
	}

	return out
}

// Clear removes every bucket from the collection. Intended for the bulk
// reset path only.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	s.buckets = make(map[string][]T)
	s.mu.Unlock()

	s.writer.enqueue(writeOp{clear: true})
}

// Close flushes pending durable writes and stops the background writer.
func (s *Store[T]) Close() {
	s.writer.close()
}

// marshalBucket must be called with the mutex held.
func (s *Store[T]) marshalBucket(dateKey string) []byte {
	blob, err := json.Marshal(s.buckets[dateKey])
	if err != nil {
		// domain records always marshal; this would be a programmer error
		slog.Error(
			"failed to marshal bucket",
			slog.String("collection", s.collection),
			slog.String("date", dateKey),
			slog.Any("error", err),
		)

		return nil
	}

	return blob
}

func indexOf[T Record](bucket []T, id string) int {
	for i := range bucket {
		if bucket[i].RecordID() == id {
			return i
		}
	}

	return -1
}
