package records

import (
	"log/slog"
	"time"
)

const (
	writeQueueSize   = 64
	maxWriteAttempts = 5
	initialBackoff   = 100 * time.Millisecond
	maxBackoff       = 2 * time.Second
)

type writeOp struct {
	dateKey string
	blob    []byte
	remove  bool
	clear   bool
}

// writer applies durable writes behind the in-memory state. A failed write is
// retried with capped exponential backoff and eventually dropped with a log
// entry; it never surfaces to the caller.
type writer struct {
	collection string
	db         Persister
	ops        chan writeOp
	done       chan struct{}
}

func newWriter(collection string, db Persister) *writer {
	w := &writer{
		collection: collection,
		db:         db,
		ops:        make(chan writeOp, writeQueueSize),
		done:       make(chan struct{}),
	}

	go w.run()

	return w
}

func (w *writer) enqueue(op writeOp) {
	if op.blob == nil && !op.remove && !op.clear {
		return
	}

	w.ops <- op
}

func (w *writer) close() {
	close(w.ops)
	<-w.done
}

func (w *writer) run() {
	defer close(w.done)

	for op := range w.ops {
		w.apply(op)
	}
}

func (w *writer) apply(op writeOp) {
	backoff := initialBackoff

	for attempt := 1; ; attempt++ {
		err := w.write(op)
		if err == nil {
			return
		}

		if attempt == maxWriteAttempts {
			slog.Error(
				"dropping durable write",
				slog.String("collection", w.collection),
				slog.String("date", op.dateKey),
				slog.Int("attempts", attempt),
				slog.Any("error", err),
			)

			return
		}

		slog.Warn(
			"retrying durable write",
			slog.String("collection", w.collection),
			slog.String("date", op.dateKey),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		time.Sleep(backoff)

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

func (w *writer) write(op writeOp) error {
	switch {
	case op.clear:
		return w.db.ClearCollection(w.collection)
	case op.remove:
		return w.db.DeleteBucketBlob(w.collection, op.dateKey)
	default:
		return w.db.PutBucketBlob(w.collection, op.dateKey, op.blob)
	}
}
