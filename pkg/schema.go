package semgraph

import (
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

var (
	classes    = &collection{name: "class", bucket: []byte("classes")}
	properties = &collection{name: "property", bucket: []byte("properties")}
	instances  = &collection{name: "instance", bucket: []byte("instances")}
	terminals  = &collection{name: "terminal", bucket: []byte("terminals")}
	graph      = &collection{name: "triple", bucket: []byte("graph")}

	allCollections = []*collection{classes, properties, instances, terminals, graph}
)

var (
	metaBucket       = []byte("__meta__")
	storeIDKey       = []byte("store_id")
	formatVersionKey = []byte("format_version")
)

const formatVersion = 1

func collectionFor(kind Kind) *collection {
	switch kind {
	case KindClass:
		return classes
	case KindInstance:
		return instances
	case KindTerminal:
		return terminals
	default:
		panic(fmt.Sprintf("no collection for kind %s", kind))
	}
}

// Initialize creates the five collections if they are missing. It can be
// called any number of times; existing records are left alone.
func (s *Store) Initialize() error {
	var storeID string
	created := false
	err := s.boltDB.Update(func(tx *bolt.Tx) error {
		for _, coll := range allCollections {
			if _, err := tx.CreateBucketIfNotExists(coll.bucket); err != nil {
				return err
			}
		}
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}
		versionBytes := meta.Get(formatVersionKey)
		if versionBytes == nil {
			// fresh file: stamp it
			created = true
			storeID = uuid.New().String()
			if err := meta.Put(storeIDKey, []byte(storeID)); err != nil {
				return err
			}
			return meta.Put(formatVersionKey, encodeID(formatVersion))
		}
		if version := decodeID(versionBytes); version != formatVersion {
			return fmt.Errorf("unsupported format version %d (want %d)", version, formatVersion)
		}
		storeID = string(meta.Get(storeIDKey))
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "initializing store")
	}
	if created {
		clog.Info(s, "initialized store", zap.String("store_id", storeID))
	} else {
		clog.Debug(s, "store already initialized", zap.String("store_id", storeID))
	}
	return nil
}

// StoreID returns the id stamped on the data file when it was first
// initialized.
func (s *Store) StoreID() (string, error) {
	var storeID string
	err := s.view(func(tx *bolt.Tx) error {
		storeID = string(tx.Bucket(metaBucket).Get(storeIDKey))
		return nil
	})
	return storeID, err
}

func (s *Store) update(fn func(tx *bolt.Tx) error) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(metaBucket) == nil {
			return ErrNotInitialized
		}
		return fn(tx)
	})
}

func (s *Store) view(fn func(tx *bolt.Tx) error) error {
	return s.boltDB.View(func(tx *bolt.Tx) error {
		if tx.Bucket(metaBucket) == nil {
			return ErrNotInitialized
		}
		return fn(tx)
	})
}
