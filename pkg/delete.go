package semgraph

import (
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

// Deleting a class, property, instance or terminal is refused while any
// triple (or, for a class, any instance) still references it. The check and
// the delete share a transaction, so a concurrent assert can't sneak a new
// reference in between.

func (s *Store) DeleteClass(id ID) error {
	return s.deleteNode(ClassRef(id))
}

func (s *Store) DeleteInstance(id ID) error {
	return s.deleteNode(InstanceRef(id))
}

func (s *Store) DeleteTerminal(id ID) error {
	return s.deleteNode(TerminalRef(id))
}

func (s *Store) deleteNode(ref Ref) error {
	defer observe(s.metrics.deleteLatency, time.Now())
	coll := collectionFor(ref.Kind())
	err := s.update(func(tx *bolt.Tx) error {
		if !coll.exists(tx, ref.ID()) {
			return &NotFoundError{What: coll.name, ID: ref.ID()}
		}
		if err := graph.scan(tx, func(tripleID ID, raw []byte) error {
			t, err := decodeTriple(raw)
			if err != nil {
				return err
			}
			if t.references(ref) {
				return &ReferencedError{What: coll.name, ID: ref.ID(), ByWhat: graph.name, ByID: tripleID}
			}
			return nil
		}); err != nil {
			return err
		}
		if ref.Kind() == KindClass {
			if err := instances.scan(tx, func(instID ID, raw []byte) error {
				inst := &Instance{}
				if err := decode(raw, inst); err != nil {
					return err
				}
				if inst.Class != nil && *inst.Class == ref.ID() {
					return &ReferencedError{What: coll.name, ID: ref.ID(), ByWhat: instances.name, ByID: instID}
				}
				return nil
			}); err != nil {
				return err
			}
		}
		return coll.delete(tx, ref.ID())
	})
	if err != nil {
		return errors.Wrapf(err, "deleting %s", coll.name)
	}
	clog.Debug(s.op("delete"), "deleted record", zap.Stringer("ref", ref))
	return nil
}

func (s *Store) DeleteProperty(id ID) error {
	defer observe(s.metrics.deleteLatency, time.Now())
	err := s.update(func(tx *bolt.Tx) error {
		if !properties.exists(tx, id) {
			return &NotFoundError{What: properties.name, ID: id}
		}
		if err := graph.scan(tx, func(tripleID ID, raw []byte) error {
			t, err := decodeTriple(raw)
			if err != nil {
				return err
			}
			if t.Predicate == id {
				return &ReferencedError{What: properties.name, ID: id, ByWhat: graph.name, ByID: tripleID}
			}
			return nil
		}); err != nil {
			return err
		}
		return properties.delete(tx, id)
	})
	if err != nil {
		return errors.Wrap(err, "deleting property")
	}
	clog.Debug(s.op("delete"), "deleted property", zap.Uint64("id", uint64(id)))
	return nil
}

// DeleteTriple removes a triple. Nothing references triples, so this only
// fails if the id doesn't exist.
func (s *Store) DeleteTriple(id ID) error {
	defer observe(s.metrics.deleteLatency, time.Now())
	if err := s.update(func(tx *bolt.Tx) error {
		return graph.delete(tx, id)
	}); err != nil {
		return errors.Wrap(err, "deleting triple")
	}
	clog.Debug(s.op("delete"), "deleted triple", zap.Uint64("id", uint64(id)))
	return nil
}
