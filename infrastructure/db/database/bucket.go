package database

import "bytes"

var separator = []byte("/")

// Bucket groups keys under a common path. A bucket made of "template"
// places key "p2pkh" at "template/p2pkh".
type Bucket struct {
	path [][]byte
}

// MakeBucket creates a bucket from a path of bucket names.
func MakeBucket(path ...[]byte) *Bucket {
	return &Bucket{path: path}
}

// Bucket returns the sub-bucket named bucketBytes.
func (b *Bucket) Bucket(bucketBytes []byte) *Bucket {
	newPath := make([][]byte, len(b.path), len(b.path)+1)
	copy(newPath, b.path)
	return MakeBucket(append(newPath, bucketBytes)...)
}

// Key returns the full database key of key inside the bucket.
func (b *Bucket) Key(key []byte) []byte {
	return append(b.Path(), key...)
}

// Path returns the bucket path followed by a separator. Every key of the
// bucket starts with it.
func (b *Bucket) Path() []byte {
	return append(bytes.Join(b.path, separator), separator...)
}
