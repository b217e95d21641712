// Package store connects to the device-local data store that backs the
// record collections, session credentials, preferences, and reminders.
package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Collection names for the date-bucketed record stores.
const (
	CollectionTasks = "tasks"
	CollectionFocus = "focus"
	CollectionAlbum = "album"
)

const (
	bucketAuth      = "auth"
	bucketPrefs     = "prefs"
	bucketReminders = "reminders"

	authKey = "session"
)

var errHaruRunning = errors.New(
	"is haru already running? Only one instance can be active at a time",
)

var buckets = []string{
	CollectionTasks,
	CollectionFocus,
	CollectionAlbum,
	bucketAuth,
	bucketPrefs,
	bucketReminders,
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// PutBucketBlob stores the serialized contents of one date bucket.
func (c *Client) PutBucketBlob(collection, dateKey string, blob []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(collection)).Put([]byte(dateKey), blob)
	})
}

// DeleteBucketBlob removes an entire date bucket from a collection.
func (c *Client) DeleteBucketBlob(collection, dateKey string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(collection)).Delete([]byte(dateKey))
	})
}

// LoadCollection returns every date bucket in a collection keyed by date.
func (c *Client) LoadCollection(collection string) (map[string][]byte, error) {
	out := make(map[string][]byte)

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(collection)).ForEach(func(k, v []byte) error {
			blob := make([]byte, len(v))
			copy(blob, v)
			out[string(k)] = blob

			return nil
		})
	})

	return out, err
}

// ClearCollection drops and recreates a collection bucket.
func (c *Client) ClearCollection(collection string) error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(collection))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucket([]byte(collection))

		return err
	})
}

// SaveAuth overwrites the persisted session credentials.
func (c *Client) SaveAuth(blob []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAuth)).Put([]byte(authKey), blob)
	})
}

// GetAuth returns the persisted session credentials, or nil if absent.
func (c *Client) GetAuth() ([]byte, error) {
	var blob []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketAuth)).Get([]byte(authKey))
		if len(v) == 0 {
			return nil
		}

		blob = make([]byte, len(v))
		copy(blob, v)

		return nil
	})

	return blob, err
}

// ClearAuth removes the persisted session credentials. Safe to call when no
// session exists.
func (c *Client) ClearAuth() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAuth)).Delete([]byte(authKey))
	})
}

// SetPref stores a string preference.
func (c *Client) SetPref(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPrefs)).Put([]byte(key), []byte(value))
	})
}

// GetPref returns a string preference, or "" if it is not set.
func (c *Client) GetPref(key string) (string, error) {
	var value string

	err := c.View(func(tx *bolt.Tx) error {
		value = string(tx.Bucket([]byte(bucketPrefs)).Get([]byte(key)))
		return nil
	})

	return value, err
}

// RemovePref deletes a preference key.
func (c *Client) RemovePref(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPrefs)).Delete([]byte(key))
	})
}

// PutReminder stores a serialized reminder under its id.
func (c *Client) PutReminder(id string, blob []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketReminders)).Put([]byte(id), blob)
	})
}

// DeleteReminder removes a reminder by id. No-op if absent.
func (c *Client) DeleteReminder(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketReminders)).Delete([]byte(id))
	})
}

// ListReminders returns every serialized reminder.
func (c *Client) ListReminders() ([][]byte, error) {
	var out [][]byte

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketReminders)).ForEach(func(_, v []byte) error {
			blob := make([]byte, len(v))
			copy(blob, v)
			out = append(out, blob)

			return nil
		})
	})

	return out, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// a held file lock surfaces as a timeout under Options.Timeout
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errHaruRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			_, err = tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
