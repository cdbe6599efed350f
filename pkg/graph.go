package semgraph

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

// Triple is a (subject, predicate, object) assertion. Object is nil when
// the assertion has no object bound yet.
type Triple struct {
	ID        ID
	Subject   Ref
	Predicate ID
	Object    *Ref
}

func (t *Triple) String() string {
	object := ""
	if t.Object != nil {
		object = fmt.Sprintf("%d", t.Object.ID())
	}
	return fmt.Sprintf("<subject='%d', predicate='%d', object_='%s'>", t.Subject.ID(), t.Predicate, object)
}

// references reports whether ref appears as the subject or the object of t.
// Both the kind and the id have to match.
func (t *Triple) references(ref Ref) bool {
	if t.Subject == ref {
		return true
	}
	return t.Object != nil && *t.Object == ref
}

// tripleRecord is the stored form of a Triple: each reference is split
// into an id column and a type column.
type tripleRecord struct {
	ID          ID    `json:"id"`
	SubjectID   ID    `json:"subject_id"`
	SubjectType Kind  `json:"subject_type"`
	PredicateID ID    `json:"predicate_id"`
	ObjectID    *ID   `json:"object_id,omitempty"`
	ObjectType  *Kind `json:"object_type,omitempty"`
}

func newTripleRecord(t *Triple) *tripleRecord {
	rec := &tripleRecord{
		ID:          t.ID,
		SubjectID:   t.Subject.ID(),
		SubjectType: t.Subject.Kind(),
		PredicateID: t.Predicate,
	}
	if t.Object != nil {
		objectID, objectType := t.Object.ID(), t.Object.Kind()
		rec.ObjectID = &objectID
		rec.ObjectType = &objectType
	}
	return rec
}

func (rec *tripleRecord) toTriple() (*Triple, error) {
	if !kindIn(rec.SubjectType, subjectKinds) {
		return nil, fmt.Errorf("triple %d: stored subject type %s", rec.ID, rec.SubjectType)
	}
	t := &Triple{
		ID:        rec.ID,
		Subject:   Ref{kind: rec.SubjectType, id: rec.SubjectID},
		Predicate: rec.PredicateID,
	}
	if rec.ObjectID != nil {
		if rec.ObjectType == nil || !kindIn(*rec.ObjectType, objectKinds) {
			return nil, fmt.Errorf("triple %d: object %d stored without a valid type", rec.ID, *rec.ObjectID)
		}
		t.Object = &Ref{kind: *rec.ObjectType, id: *rec.ObjectID}
	}
	return t, nil
}

func decodeTriple(raw []byte) (*Triple, error) {
	rec := &tripleRecord{}
	if err := decode(raw, rec); err != nil {
		return nil, err
	}
	return rec.toTriple()
}

func checkKind(field string, ref Ref, allowed []Kind) error {
	if !kindIn(ref.Kind(), allowed) {
		return &InvalidArgumentError{Field: field, Value: ref.Kind().String()}
	}
	return nil
}

// AssertTriple validates and inserts a triple. The subject must be a class
// or an instance, the object (if any) a class or a terminal, and every
// reference must resolve. Validation and insert run in one transaction, so
// a failed assert writes nothing.
func (s *Store) AssertTriple(subject Ref, predicate ID, object *Ref) (ID, error) {
	defer observe(s.metrics.assertLatency, time.Now())
	if err := checkKind("subject type", subject, subjectKinds); err != nil {
		return 0, errors.Wrap(err, "asserting triple")
	}
	if object != nil {
		if err := checkKind("object type", *object, objectKinds); err != nil {
			return 0, errors.Wrap(err, "asserting triple")
		}
	}

	var id ID
	err := s.update(func(tx *bolt.Tx) error {
		subjectColl := collectionFor(subject.Kind())
		if !subjectColl.exists(tx, subject.ID()) {
			return &DanglingReferenceError{Field: "subject", What: subjectColl.name, ID: subject.ID()}
		}
		if !properties.exists(tx, predicate) {
			return &DanglingReferenceError{Field: "predicate", What: properties.name, ID: predicate}
		}
		if object != nil {
			objectColl := collectionFor(object.Kind())
			if !objectColl.exists(tx, object.ID()) {
				return &DanglingReferenceError{Field: "object", What: objectColl.name, ID: object.ID()}
			}
		}
		var err error
		id, err = graph.insert(tx, func(id ID) interface{} {
			return newTripleRecord(&Triple{ID: id, Subject: subject, Predicate: predicate, Object: object})
		})
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "asserting triple")
	}
	clog.Debug(s.op("assert_triple"), "asserted triple",
		zap.Uint64("id", uint64(id)), zap.Stringer("subject", subject), zap.Uint64("predicate", uint64(predicate)))
	return id, nil
}

func (s *Store) GetTriple(id ID) (*Triple, error) {
	defer observe(s.metrics.lookupLatency, time.Now())
	var triple *Triple
	err := s.view(func(tx *bolt.Tx) error {
		rec := &tripleRecord{}
		if err := graph.get(tx, id, rec); err != nil {
			return err
		}
		var err error
		triple, err = rec.toTriple()
		return err
	})
	if err != nil {
		return nil, err
	}
	return triple, nil
}

func getNode(tx *bolt.Tx, ref Ref) (Node, error) {
	var node Node
	switch ref.Kind() {
	case KindClass:
		node = &Class{}
	case KindInstance:
		node = &Instance{}
	case KindTerminal:
		node = &Terminal{}
	default:
		return nil, &InvalidArgumentError{Field: "kind", Value: ref.Kind().String()}
	}
	if err := collectionFor(ref.Kind()).get(tx, ref.ID(), node); err != nil {
		return nil, err
	}
	return node, nil
}

// Resolve looks up the record a reference names.
func (s *Store) Resolve(ref Ref) (Node, error) {
	defer observe(s.metrics.resolveLatency, time.Now())
	var node Node
	err := s.view(func(tx *bolt.Tx) error {
		var err error
		node, err = getNode(tx, ref)
		return err
	})
	return node, err
}

// ResolveSubject returns the *Class or *Instance the triple is about.
func (s *Store) ResolveSubject(t *Triple) (Node, error) {
	return s.Resolve(t.Subject)
}

// ResolveObject returns the *Class or *Terminal the triple points at, or
// nil if it has no object.
func (s *Store) ResolveObject(t *Triple) (Node, error) {
	if t.Object == nil {
		return nil, nil
	}
	return s.Resolve(*t.Object)
}

func (s *Store) Triples() ([]*Triple, error) {
	return s.scanTriples(func(*Triple) bool { return true })
}

// TriplesAbout returns the triples whose subject is ref.
func (s *Store) TriplesAbout(ref Ref) ([]*Triple, error) {
	return s.scanTriples(func(t *Triple) bool { return t.Subject == ref })
}

// TriplesReferencing returns the triples naming ref as subject or object.
func (s *Store) TriplesReferencing(ref Ref) ([]*Triple, error) {
	return s.scanTriples(func(t *Triple) bool { return t.references(ref) })
}

func (s *Store) scanTriples(filter func(*Triple) bool) ([]*Triple, error) {
	defer observe(s.metrics.scanLatency, time.Now())
	var result []*Triple
	err := s.view(func(tx *bolt.Tx) error {
		return graph.scan(tx, func(_ ID, raw []byte) error {
			t, err := decodeTriple(raw)
			if err != nil {
				return err
			}
			if filter(t) {
				result = append(result, t)
			}
			return nil
		})
	})
	return result, err
}
