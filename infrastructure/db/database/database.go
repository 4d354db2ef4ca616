package database

// Database is a key-value store.
type Database interface {
	// Put sets the value for key, overwriting any previous value.
	Put(key []byte, value []byte) error

	// Get returns the value for key. It returns an error satisfying
	// IsNotFoundError if the key does not exist.
	Get(key []byte) ([]byte, error)

	// Has returns whether key exists.
	Has(key []byte) (bool, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key []byte) error

	// Cursor iterates over the keys of bucket in key order.
	Cursor(bucket *Bucket) (Cursor, error)

	// Close releases the database.
	Close() error
}

// Cursor iterates over the entries of a bucket.
type Cursor interface {
	// Next moves to the next entry and returns whether one exists.
	Next() bool

	// First moves to the first entry and returns whether one exists.
	First() bool

	// Key returns the key of the current entry, relative to the bucket.
	Key() ([]byte, error)

	// Value returns the value of the current entry.
	Value() ([]byte, error)

	// Close releases the cursor.
	Close() error
}
