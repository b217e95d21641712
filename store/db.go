package store

// DB is the device storage interface consumed by the record stores, the
// session manager, and the reminder scheduler.
type DB interface {
	// PutBucketBlob stores the serialized contents of one date bucket
	PutBucketBlob(collection, dateKey string, blob []byte) error
	// DeleteBucketBlob removes an entire date bucket from a collection
	DeleteBucketBlob(collection, dateKey string) error
	// LoadCollection returns every date bucket in a collection keyed by date
	LoadCollection(collection string) (map[string][]byte, error)
	// ClearCollection removes every bucket in a collection
	ClearCollection(collection string) error
	// SaveAuth overwrites the persisted session credentials
	SaveAuth(blob []byte) error
	// GetAuth returns the persisted session credentials, or nil if absent
	GetAuth() ([]byte, error)
	// ClearAuth removes the persisted session credentials
	ClearAuth() error
	// SetPref stores a string preference
	SetPref(key, value string) error
	// GetPref returns a string preference, or "" if unset
	GetPref(key string) (string, error)
	// RemovePref deletes a preference key
	RemovePref(key string) error
	// PutReminder stores a serialized reminder under its id
	PutReminder(id string, blob []byte) error
	// DeleteReminder removes a reminder by id
	DeleteReminder(id string) error
	// ListReminders returns every serialized reminder
	ListReminders() ([][]byte, error)
	// Close ends the database connection
	Close() error
}
