package semgraph

import (
	"encoding/binary"
	"encoding/json"
	"unicode/utf8"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

// Encodes an id in 8 bytes, big endian, so that bolt cursors visit records
// in id order.
func encodeID(id ID) []byte {
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, uint64(id))
	return idBytes
}

func decodeID(idBytes []byte) ID {
	return ID(binary.BigEndian.Uint64(idBytes))
}

func decode(raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "decoding record")
	}
	return nil
}

// checkText rejects strings that are not valid UTF-8. The JSON encoding
// would otherwise replace the bad bytes and the record would come back
// different from what was written.
func checkText(field string, value string) error {
	if !utf8.ValidString(value) {
		return &InvalidArgumentError{Field: field, Value: value}
	}
	return nil
}

// collection is one bolt bucket of records keyed by a collection-local id.
type collection struct {
	name   string
	bucket []byte
}

func (c *collection) get(tx *bolt.Tx, id ID, out interface{}) error {
	raw := tx.Bucket(c.bucket).Get(encodeID(id))
	if raw == nil {
		return &NotFoundError{What: c.name, ID: id}
	}
	if err := decode(raw, out); err != nil {
		return errors.Wrapf(err, "%s %d", c.name, id)
	}
	return nil
}

func (c *collection) exists(tx *bolt.Tx, id ID) bool {
	return tx.Bucket(c.bucket).Get(encodeID(id)) != nil
}

// insert allocates the next id in the bucket and writes the record built
// for it. If the surrounding transaction rolls back, so does the id.
func (c *collection) insert(tx *bolt.Tx, build func(id ID) interface{}) (ID, error) {
	bucket := tx.Bucket(c.bucket)
	seq, err := bucket.NextSequence()
	if err != nil {
		return 0, err
	}
	id := ID(seq)
	value, err := json.Marshal(build(id))
	if err != nil {
		return 0, err
	}
	if err := bucket.Put(encodeID(id), value); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *collection) delete(tx *bolt.Tx, id ID) error {
	bucket := tx.Bucket(c.bucket)
	if bucket.Get(encodeID(id)) == nil {
		return &NotFoundError{What: c.name, ID: id}
	}
	return bucket.Delete(encodeID(id))
}

// scan calls fn with every record in the collection, in id order.
func (c *collection) scan(tx *bolt.Tx, fn func(id ID, raw []byte) error) error {
	cursor := tx.Bucket(c.bucket).Cursor()
	for key, raw := cursor.First(); key != nil; key, raw = cursor.Next() {
		if err := fn(decodeID(key), raw); err != nil {
			return err
		}
	}
	return nil
}

func (c *collection) count(tx *bolt.Tx) int {
	return tx.Bucket(c.bucket).Stats().KeyN
}
