package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/haruapp/haru/internal/models"
)

// memPersister is an in-memory stand-in for the bolt client. failures, when
// positive, makes the next N writes fail to exercise the retry path.
type memPersister struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	failures int
}

func newMemPersister() *memPersister {
	return &memPersister{blobs: make(map[string][]byte)}
}

func (m *memPersister) PutBucketBlob(_, dateKey string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failures > 0 {
		m.failures--
		return errors.New("disk unavailable")
	}

	m.blobs[dateKey] = blob

	return nil
}

func (m *memPersister) DeleteBucketBlob(_, dateKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, dateKey)

	return nil
}

func (m *memPersister) LoadCollection(string) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string][]byte, len(m.blobs))
	for k, v := range m.blobs {
		out[k] = v
	}

	return out, nil
}

func (m *memPersister) ClearCollection(string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs = make(map[string][]byte)

	return nil
}

func newTaskStore(t *testing.T, db Persister) *Store[models.TaskRecord] {
	t.Helper()

	s, err := NewStore[models.TaskRecord]("tasks", db)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return s
}

func TestInsertUpdateGet(t *testing.T) {
	s := newTaskStore(t, newMemPersister())
	defer s.Close()

	s.Insert("2025-10-09", models.TaskRecord{
		ID:   "a1",
		Text: "Buy milk",
	})

	completed := true
	patch := models.TaskPatch{Completed: &completed}

	outcome := s.Update("2025-10-09", "a1", patch.Apply)
	if outcome != Found {
		t.Fatalf("expected Found, got %v", outcome)
	}

	got := s.GetByDate("2025-10-09")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	if !got[0].Completed {
		t.Error("expected record to be completed")
	}

	if got[0].Text != "Buy milk" {
		t.Errorf("expected text to be unchanged, got %q", got[0].Text)
	}
}

func TestMissingTargetsReportNotFound(t *testing.T) {
	s := newTaskStore(t, newMemPersister())
	defer s.Close()

	s.Insert("2025-10-09", models.TaskRecord{ID: "a1", Text: "Buy milk"})

	text := "changed"
	patch := models.TaskPatch{Text: &text}

	if got := s.Update("2025-10-09", "missing", patch.Apply); got != NotFound {
		t.Errorf("update of missing id: expected NotFound, got %v", got)
	}

	if got := s.Update("2025-01-01", "a1", patch.Apply); got != NotFound {
		t.Errorf("update in missing bucket: expected NotFound, got %v", got)
	}

	if got := s.Delete("2025-10-09", "missing"); got != NotFound {
		t.Errorf("delete of missing id: expected NotFound, got %v", got)
	}

	// the original record must be untouched
	got := s.GetByDate("2025-10-09")
	if len(got) != 1 || got[0].Text != "Buy milk" {
		t.Errorf("record mutated by failed operations: %+v", got)
	}
}

func TestGetByDate_AbsentBucket(t *testing.T) {
	s := newTaskStore(t, newMemPersister())
	defer s.Close()

	got := s.GetByDate("2025-10-09")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGetByDateRange(t *testing.T) {
	s := newTaskStore(t, newMemPersister())
	defer s.Close()

	// inserted out of date order on purpose
	s.Insert("2025-10-11", models.TaskRecord{ID: "c", Text: "third"})
	s.Insert("2025-10-09", models.TaskRecord{ID: "a", Text: "first"})
	s.Insert("2025-10-09", models.TaskRecord{ID: "b", Text: "second"})
	s.Insert("2025-10-20", models.TaskRecord{ID: "d", Text: "outside"})

	got := s.GetByDateRange("2025-10-09", "2025-10-11")

	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}

	expected := []string{"a", "b", "c"}
	if diff := cmp.Diff(expected, ids); diff != "" {
		t.Errorf("range result mismatch (-want +got):\n%s", diff)
	}
}

// opSeq applies the same operations to the Store and to a plain map-of-slices
// model and requires identical observable state afterwards.
func TestModelEquivalence(t *testing.T) {
	type op struct {
		kind    string
		dateKey string
		id      string
		text    string
	}

	ops := []op{
		{"insert", "2025-10-01", "a", "one"},
		{"insert", "2025-10-01", "b", "two"},
		{"insert", "2025-10-02", "c", "three"},
		{"update", "2025-10-01", "b", "two-edited"},
		{"delete", "2025-10-01", "a", ""},
		{"update", "2025-10-03", "nope", "ignored"},
		{"insert", "2025-10-01", "d", "four"},
		{"delete", "2025-10-02", "c", ""},
		{"delete", "2025-10-02", "c", ""},
		{"insert", "2025-10-03", "e", "five"},
		{"update", "2025-10-03", "e", "five-edited"},
	}

	s := newTaskStore(t, newMemPersister())
	defer s.Close()

	model := make(map[string][]models.TaskRecord)

	for _, o := range ops {
		switch o.kind {
		case "insert":
			rec := models.TaskRecord{ID: o.id, Text: o.text}
			s.Insert(o.dateKey, rec)
			model[o.dateKey] = append(model[o.dateKey], rec)
		case "update":
			patch := models.TaskPatch{Text: &o.text}
			s.Update(o.dateKey, o.id, patch.Apply)

			for i, r := range model[o.dateKey] {
				if r.ID == o.id {
					model[o.dateKey][i].Text = o.text
				}
			}
		case "delete":
			s.Delete(o.dateKey, o.id)

			bucket := model[o.dateKey]
			for i, r := range bucket {
				if r.ID == o.id {
					model[o.dateKey] = append(bucket[:i], bucket[i+1:]...)
					break
				}
			}
		}
	}

	for dateKey, expected := range model {
		got := s.GetByDate(dateKey)

		if len(expected) == 0 {
			if len(got) != 0 {
				t.Errorf("bucket %s: expected empty, got %+v", dateKey, got)
			}

			continue
		}

		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("bucket %s mismatch (-want +got):\n%s", dateKey, diff)
		}
	}
}

func TestWriteBehindPersistsAfterFailures(t *testing.T) {
	db := newMemPersister()
	db.failures = 2 // first two writes fail, retries must recover

	s := newTaskStore(t, db)

	s.Insert("2025-10-09", models.TaskRecord{ID: "a1", Text: "Buy milk"})
	s.Close()

	db.mu.Lock()
	blob := db.blobs["2025-10-09"]
	db.mu.Unlock()

	var persisted []models.TaskRecord
	if err := json.Unmarshal(blob, &persisted); err != nil {
		t.Fatalf("persisted blob does not decode: %v", err)
	}

	if len(persisted) != 1 || persisted[0].ID != "a1" {
		t.Errorf("unexpected persisted bucket: %+v", persisted)
	}
}

func TestReloadFromPersister(t *testing.T) {
	db := newMemPersister()

	s := newTaskStore(t, db)

	for i := 0; i < 3; i++ {
		s.Insert("2025-10-09", models.TaskRecord{
			ID:   fmt.Sprintf("t%d", i),
			Text: fmt.Sprintf("task %d", i),
		})
	}

	s.Close()

	reloaded := newTaskStore(t, db)
	defer reloaded.Close()

	got := reloaded.GetByDate("2025-10-09")
	if len(got) != 3 {
		t.Fatalf("expected 3 records after reload, got %d", len(got))
	}

	// insertion order survives the round trip
	for i, r := range got {
		if r.ID != fmt.Sprintf("t%d", i) {
			t.Errorf("position %d: expected id t%d, got %s", i, i, r.ID)
		}
	}
}

func TestClear(t *testing.T) {
	db := newMemPersister()

	s := newTaskStore(t, db)
	s.Insert("2025-10-09", models.TaskRecord{ID: "a", Text: "one"})
	s.Insert("2025-10-10", models.TaskRecord{ID: "b", Text: "two"})

	s.Clear()

	if got := s.GetByDate("2025-10-09"); len(got) != 0 {
		t.Errorf("expected empty bucket after clear, got %+v", got)
	}

	s.Close()

	db.mu.Lock()
	n := len(db.blobs)
	db.mu.Unlock()

	if n != 0 {
		t.Errorf("expected empty persisted collection after clear, got %d buckets", n)
	}
}
